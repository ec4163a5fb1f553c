package submit_contact

import (
	"errors"
	"net/http"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	submitContact "github.com/Darioantonio20/BarberPlatform/internal/usecase/submit_contact"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgValidationFailed   = "el formulario contiene errores"
	msgReceived           = "Gracias por tu mensaje. Te contactaremos pronto."
)

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message string  `json:"message"`
}

// ContactResponse acknowledges the submission.
type ContactResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	useCase SubmitContactUseCase
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	_, err := h.useCase.Execute(r.Context(), &submitContact.Request{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		var verrs *submitContact.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			handlers.RespondValidationErrors(w, msgValidationFailed, verrs.Fields)
		default:
			h.logger.Error("POST /contact - error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ContactResponse{Message: msgReceived})
}
