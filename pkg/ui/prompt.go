package ui

import "errors"

// SelectOne prompts for a single choice and returns its value. Cancel,
// skip and quit come back as ErrCancelled, ErrSkipped and ErrQuit. An
// empty choice list returns nil, nil.
func SelectOne(choices []Displayable, opts ...SelectorOption) (any, error) {
	result, err := prompt(choices, opts...)
	if err != nil {
		return nil, err
	}
	return result.Value(), nil
}

// SelectMany prompts for any number of choices and returns their values
// in list order.
func SelectMany(choices []Displayable, opts ...SelectorOption) ([]any, error) {
	result, err := prompt(choices, append(opts, WithMultiSelect())...)
	if err != nil {
		return nil, err
	}
	return result.Values(), nil
}

// SelectApproval asks a yes/no question and reports whether the user
// picked yes.
func SelectApproval(opts ...SelectorOption) (bool, error) {
	choices := []Displayable{
		MustChoice(true, "yes", "[y]", "green"),
		MustChoice(false, "no", "[n]", "red"),
	}
	value, err := SelectOne(choices, opts...)
	if err != nil {
		return false, err
	}
	approved, _ := value.(bool)
	return approved, nil
}

func prompt(choices []Displayable, opts ...SelectorOption) (Result, error) {
	selector, err := NewSelector(choices, opts...)
	if err != nil {
		return Result{}, err
	}
	result, err := selector.Prompt()
	if err != nil {
		return result, err
	}
	if err := result.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// IsSignal reports whether err is one of the user-driven outcomes
// (cancel, skip, quit) rather than a fault.
func IsSignal(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, ErrSkipped) || errors.Is(err, ErrQuit)
}
