package options

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/firdawws/massive-tools/internal/pkg/env"
	"github.com/firdawws/massive-tools/internal/pkg/validator"
)

// Root contains options shared by all commands.
type Root struct {
	Verbose     bool   `flag:"verbose"`
	LogFilePath string `flag:"log-file"`
}

// Load fills the target struct from flags and ENV variables.
// Fields are matched by the "flag" tag. A flag set on the command line
// takes precedence over its ENV variable, the flag default comes last.
func Load(target interface{}, envs *env.Map, flags *pflag.FlagSet) error {
	envNaming := env.NewNamingConvention()
	parser := viper.New()

	// Bind flags
	if err := parser.BindPFlags(flags); err != nil {
		return err
	}

	// For each target struct field with "flag" tag -> load value from flag or ENV
	reflection := reflect.Indirect(reflect.ValueOf(target))
	types := reflection.Type()
	for i := 0; i < reflection.NumField(); i++ {
		tag := types.Field(i).Tag.Get("flag")
		if len(tag) == 0 {
			continue
		}

		flag := flags.Lookup(tag)
		if flag == nil {
			continue
		}

		// ENV variable is used only if the flag was not set on the command line
		var value interface{} = parser.Get(tag)
		if !flag.Changed {
			if envValue, found := envs.Lookup(envNaming.Replace(tag)); found {
				value = envValue
			}
		}

		if err := setField(reflection.Field(i), tag, value); err != nil {
			return err
		}
	}

	return nil
}

// Validate the target struct according to its "validate" tags.
func Validate(target interface{}) error {
	if err := validator.Validate(target); err != nil {
		return fmt.Errorf("invalid parameters:\n%s", err.Error())
	}
	return nil
}

// Dump options for debugging.
func Dump(target interface{}) string {
	return fmt.Sprintf("Parsed options: %+v", target)
}

func setField(field reflect.Value, tag string, value interface{}) error {
	switch field.Kind() {
	case reflect.Bool:
		field.SetBool(cast.ToBool(value))
	case reflect.String:
		field.SetString(strings.TrimSpace(cast.ToString(value)))
	case reflect.Slice:
		field.Set(reflect.ValueOf(toStringSlice(value)))
	default:
		return fmt.Errorf("unexpected type \"%s\" of the flag \"%s\"", field.Kind(), tag)
	}
	return nil
}

func toStringSlice(value interface{}) []string {
	// ENV variables hold slices as comma-separated values
	if str, ok := value.(string); ok {
		value = strings.Split(str, ",")
	}

	items := cast.ToStringSlice(value)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); len(item) > 0 {
			out = append(out, item)
		}
	}
	return out
}
