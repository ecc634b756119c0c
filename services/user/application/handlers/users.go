package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/user/application/services"
	"github.com/ghuser/wardrobe/services/user/domain/models"
)

// RegisterRequest is the request body for POST /users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"  example:"alice"`
	Password string `json:"password" validate:"required,min=6,max=72"  example:"correct-horse"`
	Email    string `json:"email"    validate:"omitempty,email"        example:"alice@example.com"`
} // @name RegisterRequest

// SignInRequest is the request body for POST /sessions.
type SignInRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"correct-horse"`
} // @name SignInRequest

// UpdateEmailRequest is the request body for PUT /me. An empty email removes it.
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
} // @name UpdateEmailRequest

// ReminderRequest is the request body for PUT /me/reminders.
type ReminderRequest struct {
	Time    string `json:"time"    validate:"required,clock" example:"07:00"`
	Enabled bool   `json:"enabled"                           example:"true"`
} // @name ReminderRequest

// UserResponse is the public view of an account.
type UserResponse struct {
	ID               string    `json:"id"                example:"0b6f1c52-2d0e-4c8e-9a3a-9f0c2d7e1a11"`
	Username         string    `json:"username"          example:"alice"`
	Email            string    `json:"email,omitempty"   example:"alice@example.com"`
	ReminderTime     string    `json:"reminder_time"     example:"07:00"`
	RemindersEnabled bool      `json:"reminders_enabled" example:"false"`
	CreatedAt        time.Time `json:"created_at"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"username already taken"`
} // @name ErrorResponse

type UserHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

func NewUserHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, store: store, log: log}
}

// Register creates an account and signs it in.
//
//	@Summary	Register
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterRequest	true	"Account"
//	@Success	201		{object}	UserResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}
	u, err := h.svc.Users.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if err := auth.SignIn(h.store, w, r, u.ID); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toResponse(u))
}

// SignIn checks credentials and starts a session.
//
//	@Summary	Sign in
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SignInRequest	true	"Credentials"
//	@Success	200		{object}	UserResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/sessions [post]
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SignInRequest](w, r)
	if !ok {
		return
	}
	id, err := h.svc.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.log.WarnContext(r.Context(), "sign in failed", "username", req.Username)
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	u, err := h.svc.Users.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if err := auth.SignIn(h.store, w, r, id); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(u))
}

// SignOut ends the current session.
//
//	@Summary	Sign out
//	@Tags		sessions
//	@Success	204
//	@Router		/sessions [delete]
func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(h.store, w, r); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.NoContent(w)
}

// Me returns the signed-in account.
//
//	@Summary	Current user
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	u, err := h.svc.Users.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(u))
}

// UpdateEmail changes the reminder address.
//
//	@Summary	Update email
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateEmailRequest	true	"Email"
//	@Success	200		{object}	UserResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/me [put]
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	id, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateEmailRequest](w, r)
	if !ok {
		return
	}
	u, err := h.svc.Users.UpdateEmail(r.Context(), id, req.Email)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(u))
}

// UpdateReminders changes the daily reminder schedule.
//
//	@Summary	Update reminder settings
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ReminderRequest	true	"Reminder settings"
//	@Success	200		{object}	UserResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/me/reminders [put]
func (h *UserHandler) UpdateReminders(w http.ResponseWriter, r *http.Request) {
	id, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ReminderRequest](w, r)
	if !ok {
		return
	}
	u, err := h.svc.Users.UpdateReminderSettings(r.Context(), id, req.Time, req.Enabled)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(u))
}

// Delete removes the account with all of its data and ends the session.
//
//	@Summary	Delete account
//	@Tags		users
//	@Success	204
//	@Router		/me [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if err := h.svc.Users.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	if err := auth.SignOut(h.store, w, r); err != nil {
		h.log.WarnContext(r.Context(), "sign out after delete failed", "error", err)
	}
	httpx.NoContent(w)
}

func toResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:               u.ID.String(),
		Username:         u.Username,
		Email:            u.Email,
		ReminderTime:     u.ReminderTime,
		RemindersEnabled: u.RemindersEnabled,
		CreatedAt:        u.CreatedAt,
	}
}
