package shared

import "fmt"

//CombineErrors folds errors into a single error prefixed with header, returns nil for no errors
func CombineErrors(header string, errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	outputErr := fmt.Errorf("%s", header)
	for _, err := range errors {
		if err == nil {
			continue
		}
		outputErr = fmt.Errorf("%w; %v", outputErr, err.Error())
	}
	return outputErr
}
