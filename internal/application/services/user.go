package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"webcars-api/internal/application/ports"
	domain "webcars-api/internal/domain/user"
	"webcars-api/internal/infrastructure/mq"
)

type UserService struct {
	userRepository domain.Repository
	auth           ports.Auth
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	auth ports.Auth,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		auth:           auth,
		mq:             rabbit,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := us.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := us.userRepository.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: &hash,
	})
	if err != nil {
		return nil, err
	}

	if u != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:     uuid.New(),
			TS:     time.Now(),
			Action: mq.ActionUserRegistered,
			UserID: u.ID,
			Payload: map[string]any{
				"email": u.Email,
			},
		}
	}

	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return u, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id domain.ID, name string) (*domain.User, error) {
	u, err := us.userRepository.UpdateProfile(ctx, id, name)
	if err != nil {
		return nil, err
	}

	return u, nil
}
