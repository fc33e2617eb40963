package ports

import (
	"context"
	"housemate-alexa/internal/domain/model"
)

type ConfigRepository interface {
	Get(ctx context.Context) (*model.Config, error)
}
