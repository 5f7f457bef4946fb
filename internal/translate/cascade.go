package translate

import (
	"context"
	"errors"
	"fmt"
)

// Cascade calls Primary first and falls back to Fallback when Primary fails.
type Cascade struct {
	Primary  Translator
	Fallback Translator
}

func NewCascade(primary, fallback Translator) *Cascade {
	return &Cascade{Primary: primary, Fallback: fallback}
}

func (c *Cascade) Translate(ctx context.Context, text, source, target string) (string, error) {
	if c.Primary == nil {
		return "", errors.New("cascade has no primary translator")
	}
	out, err := c.Primary.Translate(ctx, text, source, target)
	if err == nil {
		return out, nil
	}
	if c.Fallback == nil {
		return "", err
	}
	out, fbErr := c.Fallback.Translate(ctx, text, source, target)
	if fbErr != nil {
		return "", errors.Join(fmt.Errorf("primary: %w", err), fmt.Errorf("fallback: %w", fbErr))
	}
	return out, nil
}
