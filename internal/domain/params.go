package domain

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ImportParams are the validated request parameters of one import.
type ImportParams struct {
	Energy   EnergyType
	Contract ContractType
	Heating  HeatingType
}

// ParseEnergyType parses "power" or "gas".
func ParseEnergyType(s string) (EnergyType, error) {
	switch e := EnergyType(strings.ToLower(strings.TrimSpace(s))); e {
	case EnergyPower, EnergyGas:
		return e, nil
	case "":
		return "", fmt.Errorf("%w: energy", ErrMissingParameter)
	default:
		return "", fmt.Errorf("%w: unknown energy %q", ErrInvalidParameter, s)
	}
}

// ParseContractType parses a contract name.
func ParseContractType(s string) (ContractType, error) {
	switch c := ContractType(strings.ToLower(strings.TrimSpace(s))); c {
	case ContractFixed, ContractDynamic, ContractBattery:
		return c, nil
	case "":
		return "", fmt.Errorf("%w: source", ErrMissingParameter)
	default:
		return "", fmt.Errorf("%w: unknown source %q", ErrInvalidParameter, s)
	}
}

// ParseHeatingType parses a heating name. "none" is not accepted from callers.
func ParseHeatingType(s string) (HeatingType, error) {
	switch h := HeatingType(strings.ToLower(strings.TrimSpace(s))); h {
	case HeatingBoiler, HeatingHeatPump:
		return h, nil
	case "":
		return "", fmt.Errorf("%w: heating", ErrMissingParameter)
	default:
		return "", fmt.Errorf("%w: unknown heating %q", ErrInvalidParameter, s)
	}
}

// ParseImportParams validates the parameters of an import, collecting every problem.
// Gas imports require a heating type; power imports ignore it.
func ParseImportParams(energy EnergyType, source, heating string) (ImportParams, error) {
	params := ImportParams{Energy: energy, Heating: HeatingNone}

	var errs error

	contract, err := ParseContractType(source)
	errs = multierr.Append(errs, err)
	params.Contract = contract

	if energy == EnergyGas {
		h, err := ParseHeatingType(heating)
		errs = multierr.Append(errs, err)
		params.Heating = h
	}

	if errs != nil {
		return ImportParams{}, errs
	}
	return params, nil
}

// ParameterMessages flattens a parameter error into its individual messages.
func ParameterMessages(err error) []string {
	errs := multierr.Errors(err)
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return msgs
}
