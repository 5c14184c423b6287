package repositories

import (
	"encoding/json"
	"fmt"
	"strings"

	"gigflare/internal/query"
)

// columnMap binds predicate fields to the SQL expressions of one listing
// query. Fields absent from the map are a programming error, surfaced as an
// error rather than silently dropped.
type columnMap map[query.Field]string

// renderPredicate turns a predicate tree into a WHERE fragment with $n
// placeholders, appending the bind values to args. Tag collections are jsonb
// arrays, so set membership uses the jsonb exists operator.
func renderPredicate(p query.Predicate, cols columnMap, args *[]interface{}) (string, error) {
	switch p.Op {
	case query.OpAnd, query.OpOr:
		if len(p.Subs) == 0 {
			return "TRUE", nil
		}
		sep := " AND "
		if p.Op == query.OpOr {
			sep = " OR "
		}
		parts := make([]string, 0, len(p.Subs))
		for _, sub := range p.Subs {
			frag, err := renderPredicate(sub, cols, args)
			if err != nil {
				return "", err
			}
			parts = append(parts, frag)
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, sep) + ")", nil
	}

	col, ok := cols[p.Field]
	if !ok {
		return "", fmt.Errorf("repositories: field %q not filterable here", p.Field)
	}

	*args = append(*args, p.Value)
	n := len(*args)

	switch p.Op {
	case query.OpEq:
		return fmt.Sprintf("%s = $%d", col, n), nil
	case query.OpGTE:
		return fmt.Sprintf("%s >= $%d", col, n), nil
	case query.OpLTE:
		return fmt.Sprintf("%s <= $%d", col, n), nil
	case query.OpContainsFold:
		return fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, n), nil
	case query.OpHasTag:
		return fmt.Sprintf("%s ? $%d", col, n), nil
	default:
		return "", fmt.Errorf("repositories: unknown predicate op %d", p.Op)
	}
}

func renderOrder(key query.OrderKey, orders map[query.OrderKey]string, fallback string) string {
	if o, ok := orders[key]; ok {
		return o
	}
	return fallback
}

// jsonStrings marshals a string slice for a jsonb column, normalizing nil to
// an empty array so filters never trip over SQL NULL.
func jsonStrings(ss []string) ([]byte, error) {
	if ss == nil {
		ss = []string{}
	}
	return json.Marshal(ss)
}

func scanJSONStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode jsonb string array: %w", err)
	}
	return out, nil
}
