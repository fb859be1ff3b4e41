package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/sbilibin2017/gw-agent-wallet/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for agent registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: Jane Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Agency name
	// default: Acme Travel
	Company string `json:"company"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for agent self-registration.
// @Summary Register a new agent
// @Description Creates an agent account and its empty wallet. Emails are unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Agent registration request"
// @Success 201 {object} handlers.Response{data=models.UserDB} "Agent registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Register(r.Context(), services.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Company:  req.Company,
			Password: req.Password,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusCreated, user, "User registered successfully")
	}
}
