package repository

import (
	"context"
	"encoding/json"
	"strings"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"
	"medibook/internal/infrastructure/kvstore"

	"github.com/sirupsen/logrus"
)

type userRepository struct {
	store kvstore.Store
	log   *logrus.Logger
}

func NewUserRepository(store kvstore.Store, log *logrus.Logger) domainRepo.UserRepository {
	return &userRepository{store: store, log: log}
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return loadList[entity.User](ctx, r.store, r.log, usersKey)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	users, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return saveList(ctx, r.store, usersKey, users)
}

type sessionRepository struct {
	store kvstore.Store
	log   *logrus.Logger
}

func NewSessionRepository(store kvstore.Store, log *logrus.Logger) domainRepo.SessionRepository {
	return &sessionRepository{store: store, log: log}
}

func (r *sessionRepository) Current(ctx context.Context) (*entity.User, error) {
	raw, found, err := r.store.Get(ctx, currentUserKey)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		r.log.Warnf("Corrupt value under key %q, clearing session: %+v", currentUserKey, err)
		if delErr := r.store.Delete(ctx, currentUserKey); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}
	return &user, nil
}

func (r *sessionRepository) SetCurrent(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, currentUserKey, string(raw))
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, currentUserKey)
}
