package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

func Prompt(in io.Reader, out io.Writer, prompt, configDefault string) (string, error) {
	if configDefault == "" {
		fmt.Fprintf(out, "%s: ", prompt)
	} else {
		fmt.Fprintf(out, "%s (%s): ", prompt, configDefault)
	}

	return readLine(in)
}

// PromptForConfirmation requests and checks confirmation from the user.
// This will display the provided message followed by ' [y/N]: '. If the user
// input 'y' or 'Y' it returns true otherwise false. Closed input counts as no.
func PromptForConfirmation(in io.Reader, out io.Writer, message string) (bool, error) {
	if message == "" {
		message = "Are you sure you want to proceed?"
	}
	message += " [y/N]"

	answer, err := Prompt(in, out, message, "")
	if err != nil {
		return false, err
	}

	return strings.EqualFold(answer, "y"), nil
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error while reading input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
