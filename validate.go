package clioption

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the registered options for mistakes that [Parser.Parse] silently tolerates:
// malformed names, unknown argument types and names shared by more than one option. It returns
// nil if the registry is well formed; otherwise all problems are joined into one error.
//
// Validate is never called implicitly. Parsing keeps its first-match-wins behavior either way.
func (p *Parser) Validate() error {
	var errs []error
	shorts := make(map[rune]int)
	longs := make(map[string]int)
	for i, o := range p.options {
		if err := validateOption(o); err != nil {
			errs = append(errs, fmt.Errorf("option %d (%s): %w", i, displayName(o), err))
		}
		if j, ok := shorts[o.Short]; ok {
			errs = append(errs, fmt.Errorf("option %d: short name %q already used by option %d", i, o.Short, j))
		} else {
			shorts[o.Short] = i
		}
		if j, ok := longs[o.Long]; ok {
			errs = append(errs, fmt.Errorf("option %d: long name %q already used by option %d", i, o.Long, j))
		} else {
			longs[o.Long] = i
		}
	}
	return errors.Join(errs...)
}

func validateOption(o Option) error {
	var errs []error
	if err := getValidator().Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, fmt.Errorf("field %s failed %q check", fe.Field(), fe.Tag()))
		}
	}
	if o.Short != 0 && (o.Short == '-' || o.Short <= ' ' || o.Short > '~') {
		errs = append(errs, fmt.Errorf("short name %q is not usable as a flag", o.Short))
	}
	if strings.ContainsFunc(o.Long, unicode.IsSpace) {
		errs = append(errs, fmt.Errorf("long name %q contains whitespace", o.Long))
	}
	return errors.Join(errs...)
}

func displayName(o Option) string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return fmt.Sprintf("-%c", o.Short)
}
