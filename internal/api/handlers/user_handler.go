package handlers

import (
	"errors"
	"strings"

	"github.com/OojayFidel/plp-hackathon-2/domain"
	"github.com/OojayFidel/plp-hackathon-2/internal/api/presenters"
	"github.com/OojayFidel/plp-hackathon-2/pkg/jwt"
	"github.com/OojayFidel/plp-hackathon-2/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionUserKey = "uid"

type (
	UserHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
		jwtService  jwt.JWTService
		sessions    *session.Store
	}
)

func NewUserHandler(
	userService user.UserService,
	validator *validator.Validate,
	jwtService jwt.JWTService,
	sessions *session.Store,
) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
		jwtService:  jwtService,
		sessions:    sessions,
	}
}

func (h *userHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.AuthError(c, fiber.StatusBadRequest, domain.ErrInvalidJSON.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.AuthError(c, fiber.StatusBadRequest, domain.ErrMissingFields.Error())
	}

	res, err := h.userService.Signup(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return presenters.AuthError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEmailExists):
			return presenters.AuthError(c, fiber.StatusConflict, err.Error())
		default:
			return presenters.AuthError(c, fiber.StatusInternalServerError, "signup_failed")
		}
	}

	if err := h.establishSession(c, res.ID); err != nil {
		return presenters.AuthError(c, fiber.StatusInternalServerError, "signup_failed")
	}

	return presenters.Success(c, fiber.Map{
		"ok":    true,
		"user":  res,
		"token": h.jwtService.GenerateTokenUser(res.ID),
	})
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.AuthError(c, fiber.StatusBadRequest, domain.ErrInvalidJSON.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.AuthError(c, fiber.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.AuthError(c, fiber.StatusUnauthorized, err.Error())
		}
		return presenters.AuthError(c, fiber.StatusInternalServerError, "login_failed")
	}

	if err := h.establishSession(c, res.ID); err != nil {
		return presenters.AuthError(c, fiber.StatusInternalServerError, "login_failed")
	}

	return presenters.Success(c, fiber.Map{
		"ok":    true,
		"user":  res,
		"token": h.jwtService.GenerateTokenUser(res.ID),
	})
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	if sess, err := h.sessions.Get(c); err == nil {
		_ = sess.Destroy()
	}
	return presenters.Success(c, fiber.Map{"ok": true})
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := h.currentUserID(c)
	if userID == 0 {
		return presenters.Success(c, fiber.Map{"ok": false})
	}

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.Success(c, fiber.Map{"ok": false})
	}
	return presenters.Success(c, fiber.Map{"ok": true, "user": res})
}

func (h *userHandler) establishSession(c *fiber.Ctx, userID uint) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserKey, userID)
	return sess.Save()
}

// currentUserID resolves the caller's identity from the session cookie first,
// then from an API bearer token.
func (h *userHandler) currentUserID(c *fiber.Ctx) uint {
	if sess, err := h.sessions.Get(c); err == nil {
		if uid, ok := sess.Get(sessionUserKey).(uint); ok {
			return uid
		}
	}

	auth := c.Get(fiber.HeaderAuthorization)
	if token, found := strings.CutPrefix(auth, "Bearer "); found {
		if uid, err := h.jwtService.GetUserIDByToken(token); err == nil {
			return uid
		}
	}
	return 0
}
