package validation

import (
	"errors"

	request "emilykids_erp/internal/adapter/http/dto/request"

	validatorv10 "github.com/go-playground/validator/v10"
)

const uniqueItemTag = "item_unico"

// New returns a configured validator with the struct-level duplicate-item
// check registered for every payload that carries a line item list.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterStructValidation(createQuoteStructValidation, request.CreateQuoteRequest{})
	v.RegisterStructValidation(convertQuoteStructValidation, request.ConvertQuoteRequest{})
	v.RegisterStructValidation(createSaleStructValidation, request.CreateSaleRequest{})

	return v
}

func createQuoteStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(request.CreateQuoteRequest)
	reportDuplicateItems(sl, req.Items)
}

func convertQuoteStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(request.ConvertQuoteRequest)
	reportDuplicateItems(sl, req.Items)
}

func createSaleStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(request.CreateSaleRequest)
	reportDuplicateItems(sl, req.Items)
}

// reportDuplicateItems flags payloads where the same produto_id appears on
// more than one line. Quantity changes must edit the existing line instead.
func reportDuplicateItems(sl validatorv10.StructLevel, items []request.ItemRequest) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ProductID]; dup {
			sl.ReportError(items, "itens", "Items", uniqueItemTag, it.ProductID)
			return
		}
		seen[it.ProductID] = struct{}{}
	}
}

// HasDuplicateItemViolation reports whether err carries a duplicate-item
// struct-level violation.
func HasDuplicateItemViolation(err error) bool {
	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == uniqueItemTag {
			return true
		}
	}
	return false
}
