package msgfmt

import (
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
)

// OutputID derives a deterministic identifier for a rendered message,
// suitable for a DOM anchor. Without parameters the id is returned verbatim;
// otherwise the result is "id~digest" where the digest covers the parameters
// serialized as key or key=value tokens (nil values contribute the bare key),
// sorted by key and joined with a tab. Permuting the parameter map never
// changes the result.
//
// MD5 here is an identity fingerprint, not a security boundary; the base64
// URL alphabet keeps the token safe inside id attributes.
func OutputID(id string, params map[string]any) string {
	if len(params) == 0 {
		return id
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tokens := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := params[k]; v != nil {
			tokens = append(tokens, fmt.Sprintf("%s=%v", k, v))
		} else {
			tokens = append(tokens, k)
		}
	}
	sum := md5.Sum([]byte(strings.Join(tokens, "\t")))
	return id + "~" + base64.RawURLEncoding.EncodeToString(sum[:])
}
