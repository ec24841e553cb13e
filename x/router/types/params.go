package types

// Params defines the settlement policy of the router module.
//
// UseActualFillInput controls how the pool remainder is computed after the
// matching leg: the declared fill amount reproduces the reference behavior,
// the actual taken amount reconciles against what the venue really consumed.
// EnforceMinOutput controls whether the caller's minimum-output bound is
// asserted before paying out.
type Params struct {
	EnforceMinOutput   bool `json:"enforce_min_output"`
	UseActualFillInput bool `json:"use_actual_fill_input"`
}

// DefaultParams returns the default router parameters
func DefaultParams() Params {
	return Params{
		EnforceMinOutput:   true,
		UseActualFillInput: false,
	}
}

// Validate validates the parameter set
func (p Params) Validate() error {
	return nil
}
