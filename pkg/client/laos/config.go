package laos

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Config struct {
	BaseURL string        `envconfig:"LAOS_BASE_URL" default:"https://extensions.api.laosnetwork.io"`
	Timeout time.Duration `envconfig:"LAOS_TIMEOUT" default:"30s"`
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}
