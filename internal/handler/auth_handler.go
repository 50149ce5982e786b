package handler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"medicomeet-api/internal/auth"
	"medicomeet-api/internal/model"
	"medicomeet-api/internal/store"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type userView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

type session struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func (h *Handler) Register(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req registerRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "name, valid email and a password of 8+ characters required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, h.fail("register", err)
	}

	u := model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         model.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := h.users.CreateUser(u); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			// don't reveal which emails exist
			return nil, status.Error(codes.AlreadyExists, "registration failed")
		}
		return nil, h.fail("register", err)
	}
	h.log.Info().Str("user_id", u.ID).Msg("user registered")

	return h.session("register", u)
}

func (h *Handler) Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req loginRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "email and password required")
	}

	u, ok := h.users.UserByEmail(req.Email)
	if !ok || !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	return h.session("login", u)
}

func (h *Handler) session(op string, u model.User) (*structpb.Struct, error) {
	tok, err := auth.MakeToken(u.ID, u.Role, h.secret, h.tokenTTL)
	if err != nil {
		return nil, h.fail(op, err)
	}
	return h.reply(op, session{
		Token: tok,
		User:  userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}
