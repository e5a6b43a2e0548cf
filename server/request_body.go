package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/jrsteele09/go-bot-admin/botapi"
	"github.com/jrsteele09/go-bot-admin/internal/errors"
)

const (
	msgMalformedBody       = "Invalid JSON body"
	msgBodyTooLarge        = "Request body too large"
	msgLoginRequired       = "Username and password are required"
	msgCreateAdminRequired = "Name, username, password (at least 6 characters) and role (ADMIN or SUPERADMIN) are required"
	msgInvalidAdminUpdate  = "Admin update must contain valid fields"
	msgBroadcastRequired   = "Message is required and the image must be an image data URL"
	msgInvalidStatus       = "Status must be one of pending, completed, failed"
	msgMissingID           = "Missing id"
)

// requestError is a client input error answered locally with a fixed message.
type requestError struct {
	status  int
	message string
	cause   error
}

func (e *requestError) Error() string { return e.message }
func (e *requestError) Unwrap() error { return e.cause }

func invalidRequest(message string) error {
	return &requestError{status: http.StatusBadRequest, message: message, cause: errors.ErrInvalidRequest}
}

func writeRequestError(w http.ResponseWriter, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		writeMessage(w, reqErr.status, reqErr.message)
		return
	}
	writeMessage(w, http.StatusBadRequest, msgMalformedBody)
}

// bodyRule checks a syntactically valid JSON body before it is forwarded.
type bodyRule func(raw []byte) error

// readBody reads and checks the inbound body. Nothing reaches the Bot API
// unless this returns without error.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request, rule bodyRule) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.GetMaxBodyBytes()))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &requestError{status: http.StatusRequestEntityTooLarge, message: msgBodyTooLarge, cause: errors.ErrBodyTooLarge}
		}
		return nil, &requestError{status: http.StatusBadRequest, message: msgMalformedBody, cause: errors.ErrMalformedBody}
	}
	if !json.Valid(raw) {
		return nil, &requestError{status: http.StatusBadRequest, message: msgMalformedBody, cause: errors.ErrMalformedBody}
	}
	if rule != nil {
		if err := rule(raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, err
	}
	return v, nil
}

// validateAs decodes the body into T and runs the struct validation tags.
func validateAs[T any](v *validator.Validate, message string) bodyRule {
	return func(raw []byte) error {
		var req T
		if err := json.Unmarshal(raw, &req); err != nil {
			return invalidRequest(message)
		}
		if err := v.Struct(req); err != nil {
			return invalidRequest(message)
		}
		return nil
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

type createAdminRequest struct {
	Name     string      `json:"name" validate:"notblank"`
	Username string      `json:"username" validate:"notblank"`
	Password string      `json:"password" validate:"min=6"`
	Role     botapi.Role `json:"role" validate:"oneof=ADMIN SUPERADMIN"`
}

type updateAdminRequest struct {
	Name     *string      `json:"name" validate:"omitempty,notblank"`
	Username *string      `json:"username" validate:"omitempty,notblank"`
	Password *string      `json:"password" validate:"omitempty,min=6"`
	Role     *botapi.Role `json:"role" validate:"omitempty,oneof=ADMIN SUPERADMIN"`
}

type broadcastRequest struct {
	Message       string  `json:"message" validate:"notblank"`
	ImageDataURL  *string `json:"imageDataUrl" validate:"omitempty,startswith=data:image/"`
	ImageFileName *string `json:"imageFileName" validate:"omitempty,max=255"`
}

func (s *Server) loginRule() bodyRule {
	return validateAs[loginRequest](s.validate, msgLoginRequired)
}

func (s *Server) createAdminRule() bodyRule {
	return validateAs[createAdminRequest](s.validate, msgCreateAdminRequired)
}

func (s *Server) updateAdminRule() bodyRule {
	return validateAs[updateAdminRequest](s.validate, msgInvalidAdminUpdate)
}

func (s *Server) broadcastRule() bodyRule {
	return validateAs[broadcastRequest](s.validate, msgBroadcastRequired)
}

// targetFunc maps an inbound request to a Bot API path.
type targetFunc func(r *http.Request) (string, error)

// fixedPath forwards to path, carrying the inbound query string verbatim.
func fixedPath(path string) targetFunc {
	return func(r *http.Request) (string, error) {
		return withQuery(path, r), nil
	}
}

// idPath forwards to the path built from the {id} wildcard.
func idPath(build func(id string) string) targetFunc {
	return func(r *http.Request) (string, error) {
		id := strings.TrimSpace(r.PathValue("id"))
		if id == "" {
			return "", invalidRequest(msgMissingID)
		}
		return withQuery(build(id), r), nil
	}
}

func presentationsPath(r *http.Request) (string, error) {
	switch botapi.PresentationStatus(r.URL.Query().Get("status")) {
	case "", botapi.PresentationPending, botapi.PresentationCompleted, botapi.PresentationFailed:
		return withQuery(botapi.PathPresentations, r), nil
	default:
		return "", invalidRequest(msgInvalidStatus)
	}
}

func withQuery(path string, r *http.Request) string {
	if r.URL.RawQuery == "" {
		return path
	}
	return path + "?" + r.URL.RawQuery
}
