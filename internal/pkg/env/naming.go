package env

import (
	"fmt"
	"strings"
)

const Prefix = "MASSIVE_"

type NamingConvention struct{}

func NewNamingConvention() *NamingConvention {
	return &NamingConvention{}
}

// Replace converts flag name to ENV variable name
// for example "input-dir" -> "MASSIVE_INPUT_DIR".
func (*NamingConvention) Replace(flagName string) string {
	if len(flagName) == 0 {
		panic(fmt.Errorf("flag name cannot be empty"))
	}

	return Prefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func Files() []string {
	return []string{
		".env.local",
		".env",
	}
}
