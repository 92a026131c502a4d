package settings

import (
	"context"

	"github.com/DhavalSuthar-24/scorebook/internal/tournament"
)

// PutSettingsRequest merges keys into the stored settings.
type PutSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1,dive,keys,required,max=64,endkeys,max=4096"`
}

// WipeRequest must carry confirm=true.
type WipeRequest struct {
	Confirm bool `json:"confirm" binding:"required"`
}

// Admin is the serialized maintenance surface of the scoring service.
type Admin interface {
	Recompute(ctx context.Context) (tournament.Report, error)
	Wipe(ctx context.Context) error
}
