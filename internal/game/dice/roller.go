package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger so every draw leaves a debug trace.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller that draws from src and logs to logger.
// A nil logger is replaced with a no-op logger.
//
// Precondition: src must be non-nil.
func NewRoller(src Source, logger *zap.Logger) *Roller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roller{src: src, logger: logger}
}

// Source returns the underlying randomness provider.
func (r *Roller) Source() Source {
	return r.src
}

// Between draws a value in [lo, hi] and logs it under label.
//
// Precondition: lo <= hi.
// Postcondition: lo <= result <= hi.
func (r *Roller) Between(label string, lo, hi int) int {
	v := Between(r.src, lo, hi)
	r.logger.Debug("dice between",
		zap.String("label", label),
		zap.Int("lo", lo),
		zap.Int("hi", hi),
		zap.Int("value", v),
	)
	return v
}

// Roll parses expr, rolls it, and logs the result at debug level.
func (r *Roller) Roll(expr string) (Result, error) {
	e, err := Parse(expr)
	if err != nil {
		return Result{}, err
	}
	res := e.Roll(r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", res.Expression),
		zap.Ints("dice", res.Dice),
		zap.Int("modifier", res.Modifier),
		zap.Int("total", res.Total()),
	)
	return res, nil
}
