package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/service"
)

// AfterLoginPath is where a successful login lands.
const AfterLoginPath = "/admin"

// AuthHandlers provides HTTP handlers for the login, sign-up and logout flows.
type AuthHandlers struct {
	Svc      *service.AuthService
	Guard    *service.SessionGuard
	Store    ports.CredentialStore
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Page renders the login and sign-up forms.
// GET /auth.
func (h *AuthHandlers) Page(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r)
	if r.URL.Query().Get("registered") == "1" {
		data.Flash = "Account created. Please log in."
	}
	h.Renderer.Render(w, r, http.StatusOK, data)
}

// Login exchanges the submitted credentials for a bearer token and stores it in the
// client's slot, replacing any previous one.
// POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderFailure(w, r, "login", apperrors.Validation("Invalid form submission."))
		return
	}
	in := ports.LoginInput{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}

	slot := h.Store.Slot(w, r)
	if err := h.Svc.Login(r.Context(), slot, in); err != nil {
		h.logger().InfoContext(r.Context(), "login failed", slog.String("code", string(apperrors.GetCode(err))))
		h.renderFailure(w, r, "login", err)
		return
	}
	redirectTo(w, r, AfterLoginPath)
}

// Register creates a backend account and sends the visitor back to the login form.
// POST /auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderFailure(w, r, "register", apperrors.Validation("Invalid form submission."))
		return
	}
	in := service.SignUpInput{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}

	if err := h.Svc.Register(r.Context(), in); err != nil {
		h.logger().InfoContext(r.Context(), "registration failed", slog.String("code", string(apperrors.GetCode(err))))
		h.renderFailure(w, r, "register", err)
		return
	}
	redirectTo(w, r, LoginPath+"?registered=1")
}

// Logout clears the client's credential and returns to the login view.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Logout(r.Context(), h.Store.Slot(w, r)); err != nil {
		h.logger().ErrorContext(r.Context(), "logout failed", slog.Any("error", err))
		http.Error(w, "Logout failed, please try again.", http.StatusInternalServerError)
		return
	}
	redirectTo(w, r, LoginPath)
}

// Status runs one access check and reports the settled state.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	res := h.Guard.CheckAccess(r.Context(), h.Store.Slot(w, r))
	if !res.State.Settled() {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": res.State == domainauth.StateAuthenticated,
		"state":         res.State.String(),
		"reason":        res.Reason,
	})
}

func (h *AuthHandlers) pageData(r *http.Request) PageData {
	data := NewPageData(r, PageMeta{Title: "Log in", CurrentPage: PageAuth})
	data.Authenticated = false
	return data
}

// renderFailure re-renders the auth page with the error attached to the form that failed.
func (h *AuthHandlers) renderFailure(w http.ResponseWriter, r *http.Request, form string, err error) {
	data := h.pageData(r)
	data.Form = map[string]string{form + "_email": r.PostFormValue("email")}

	if fields := apperrors.GetFields(err); len(fields) > 0 {
		data.Errors = make(map[string]string, len(fields))
		for k, v := range fields {
			data.Errors[form+"_"+k] = v
		}
	}
	data.Error = userMessage(err)
	h.Renderer.Render(w, r, StatusForError(err), data)
}

// redirectTo sends a post-redirect-get redirect, as Hx-Redirect for htmx requests.
func redirectTo(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

const genericErrorMessage = "Something went wrong. Please try again."

// userMessage returns the message of an application error; those are written by this
// process or taken from the backend's error body. Anything else gets a generic message.
func userMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return genericErrorMessage
}
