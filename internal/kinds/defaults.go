package kinds

import (
	"github.com/openlegis/lexfeed/internal/kinds/bill"
	"github.com/openlegis/lexfeed/internal/kinds/law"
)

// Defaults returns a registry with the built-in kinds registered.
// Additional kinds (reports, records) follow the same pattern: implement a
// kind subpackage and add a Register call here.
func Defaults() *Registry {
	r := New()

	// Registration of built-in kinds cannot fail.
	_ = r.Register(Entry{
		Kind:         bill.Kind,
		Pattern:      bill.Pattern,
		Identify:     bill.Identify,
		Deserialiser: bill.NewDeserialiser(),
		Mapper:       bill.NewMapper(),
	})
	_ = r.Register(Entry{
		Kind:         law.Kind,
		Pattern:      law.Pattern,
		Identify:     law.Identify,
		Deserialiser: law.NewDeserialiser(),
		Mapper:       law.NewMapper(),
	})

	return r
}
