// Package review checks a proposed extraction before it is offered to a
// human: structural validation against a JSON schema, plus arithmetic and
// completeness checks that the schema cannot express. The output is a list of
// issues for the review screen, never a hard rejection.
package review

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the extraction payload stored on a scan job.
func BuildExtractionJSONSchema(allowedCategories []string) map[string]any {
	itemProps := map[string]any{
		"category":    map[string]any{"type": "string"},
		"description": map[string]any{"type": "string", "minLength": 1},
		"quantity":    decimalProp(),
		"unit_price":  decimalProp(),
		"gst_rate":    decimalProp(),
	}
	if len(allowedCategories) > 0 {
		itemProps["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	props := map[string]any{
		"invoice_number": map[string]any{"type": "string", "minLength": 1},
		"invoice_date":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"vendor_name":    map[string]any{"type": "string"},
		"vendor_gstin": map[string]any{
			"type":    "string",
			"pattern": `^$|^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z][A-Z][0-9A-Z]$`,
		},
		"vendor_phone":   map[string]any{"type": "string"},
		"vendor_address": map[string]any{"type": "string"},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           itemProps,
				"required":             []string{"description", "quantity", "unit_price", "gst_rate"},
			},
		},
		"subtotal":       decimalProp(),
		"cgst":           decimalProp(),
		"sgst":           decimalProp(),
		"cess":           decimalProp(),
		"total_amount":   decimalProp(),
		"items_subtotal": decimalProp(),
		"raw_text":       map[string]any{"type": "string"},
	}
	required := []string{"invoice_number", "invoice_date", "items", "total_amount"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d+)?$`,
	}
}
