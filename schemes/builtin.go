package schemes

import "xdao.co/conloc/convert"

func init() {
	MustRegister(Scheme{
		Name:        "parent",
		Description: "immediate parent maps to the all-zero account",
		New: func(cfg Config) (convert.Converter, error) {
			return convert.NewParentDefault(cfg.Width)
		},
	})
	MustRegister(Scheme{
		Name:        "child",
		Description: "child sub-system id, recoverable tagged encoding",
		New: func(cfg Config) (convert.Converter, error) {
			return convert.NewChildSystemIndex(cfg.Width)
		},
	})
	MustRegister(Scheme{
		Name:        "sibling",
		Description: "sibling sub-system id, recoverable tagged encoding",
		New: func(cfg Config) (convert.Converter, error) {
			return convert.NewSiblingSystemIndex(cfg.Width)
		},
	})
	MustRegister(Scheme{
		Name:        "account32",
		Description: "local AccountId32 junction used verbatim",
		New: func(cfg Config) (convert.Converter, error) {
			return convert.NewAccountID32Alias(cfg.Network)
		},
	})
	MustRegister(Scheme{
		Name:        "account20",
		Description: "local AccountKey20 junction used verbatim",
		New: func(cfg Config) (convert.Converter, error) {
			return convert.NewAccountKey20Alias(cfg.Network)
		},
	})
	MustRegister(Scheme{
		Name:        "hashed",
		Description: "one-way digest of the canonical location",
		New: func(cfg Config) (convert.Converter, error) {
			return convert.NewHashedOrigin(cfg.Width)
		},
	})
}
