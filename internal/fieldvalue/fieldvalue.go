// Package fieldvalue models composite field values: a primary unit plus a
// secondary collection of units of the same shape, deduplicated by a single
// identity attribute (the email address, the phone number, the link URL).
package fieldvalue

// Composite is one composite field value. Secondary holds the secondary
// collection as loaded from storage: a []U, a JSON-encoded string, or nil.
// Merge results use the same type with Secondary set to a []U (or nil when
// empty), so a result is itself a valid contribution to a later merge.
type Composite[U any] struct {
	Primary   U
	Secondary any
}

// PhoneNumber is the unit shape of the PHONES family.
type PhoneNumber struct {
	Number      string `json:"number"`
	CallingCode string `json:"callingCode"`
	CountryCode string `json:"countryCode"`
}

// Link is the unit shape of the LINKS family.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Spec parameterizes the composite merge algorithm for one field family.
// The algorithm itself is shared; families differ only in unit shape,
// identity attribute, and empty defaults.
type Spec[U any] struct {
	// EmptyPrimary is the family's default primary unit, used when no
	// record contributes a present primary slot.
	EmptyPrimary U

	// Identity extracts the attribute used for presence, equality and
	// deduplication of units.
	Identity func(U) string
}

// DefaultCountryCode seeds empty phone primaries when no configuration
// overrides it.
const DefaultCountryCode = "US"

var (
	// Emails uses the bare address string as its unit; the identity
	// attribute is the unit itself.
	Emails = Spec[string]{Identity: func(address string) string { return address }}

	// Phones with the stock country-code default. Callers with a
	// configured default build their own via PhonesSpec.
	Phones = PhonesSpec(DefaultCountryCode)

	// Links deduplicate by URL; labels ride along with whichever unit
	// is kept.
	Links = Spec[Link]{Identity: func(l Link) string { return l.URL }}
)

// PhonesSpec builds the PHONES spec with the given country-code default.
func PhonesSpec(countryCode string) Spec[PhoneNumber] {
	return Spec[PhoneNumber]{
		EmptyPrimary: PhoneNumber{CountryCode: countryCode},
		Identity:     func(p PhoneNumber) string { return p.Number },
	}
}
