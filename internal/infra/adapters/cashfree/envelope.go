package cashfree

// Cashfree response shapes differ between environments: the fields we care
// about may sit at the top level or nested under "data". Rather than inline
// ad hoc fallbacks at each call site, extraction is an ordered candidate list
// resolved by one shared helper.

type fieldPath []string

var paymentLinkFields = []fieldPath{
	{"payment_link"},
	{"redirect_url"},
	{"data", "payment_link"},
	{"data", "redirect_url"},
}

var orderStatusFields = []fieldPath{
	{"order_status"},
	{"data", "order_status"},
}

// firstString walks the candidate paths in priority order and returns the
// first non-empty string value found in doc.
func firstString(doc map[string]any, candidates []fieldPath) string {
	for _, path := range candidates {
		if s := stringAt(doc, path); s != "" {
			return s
		}
	}
	return ""
}

func stringAt(doc map[string]any, path fieldPath) string {
	cur := any(doc)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	s, _ := cur.(string)
	return s
}
