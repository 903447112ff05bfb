package services

import (
	"github.com/gatekit/gatekit/authenticator"
	"github.com/gatekit/gatekit/repositories"
)

// Services holds all service instances
type Services struct {
	Access   AccessService
	Activity ActivityService
}

// NewServices creates and initializes all service instances. The
// access service loads the durable allow-list as part of construction.
func NewServices(repos *repositories.Repositories, admins *authenticator.AdminSet) (*Services, error) {
	access, err := NewAccessService(admins, repos.Users)
	if err != nil {
		return nil, err
	}

	return &Services{
		Access:   access,
		Activity: NewActivityService(repos.Logs),
	}, nil
}
