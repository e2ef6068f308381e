package cmd

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// confirm blocks on a single yes/no prompt. It reports false when the
// operator declines and an error only when reading input itself fails.
func confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
