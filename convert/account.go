package convert

import "fmt"

// Account widths supported by the schemes in this package.
const (
	Width32 = 32
	Width20 = 20
)

// Account is an opaque local account identifier: a fixed-width byte
// sequence (32 or 20 bytes depending on the deployment's namespace).
// Everything outside a conversion scheme treats it as bytes.
type Account []byte

// ZeroAccount returns the all-zero account of the given width.
func ZeroAccount(width int) Account { return make(Account, width) }

// Equal reports byte equality.
func (a Account) Equal(b Account) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every byte is zero.
func (a Account) IsZero() bool {
	for _, b := range a {
		if b != 0 {
			return false
		}
	}
	return true
}

func checkWidth(width int) error {
	if width != Width32 && width != Width20 {
		return fmt.Errorf("convert: unsupported account width %d", width)
	}
	return nil
}
