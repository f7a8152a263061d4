package product

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
)

const (
	maxNameLength        = 255
	maxSKULength         = 50
	maxDescriptionLength = 1000
)

var (
	skuPattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

	minPrice = decimal.RequireFromString("0.01")
	maxPrice = decimal.RequireFromString("999999.99")
)

// ValidatedProduct carries a create payload after normalization. SKU is
// uppercased and all strings are trimmed.
type ValidatedProduct struct {
	Name        string
	SKU         string
	Price       decimal.Decimal
	Description *string
}

// ValidateCreateProduct runs the field checks in a fixed order and reports
// the first failure: name, then sku, then price. The quantity is checked
// separately, after the warehouse lookup.
func ValidateCreateProduct(input CreateProductInput) (*ValidatedProduct, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	sku, err := NormalizeSKU(input.SKU)
	if err != nil {
		return nil, err
	}

	price, err := validatePrice(input.Price)
	if err != nil {
		return nil, err
	}

	validated := &ValidatedProduct{
		Name:  name,
		SKU:   sku,
		Price: price,
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			return nil, pkgerrors.New(pkgerrors.CodeMalformedRequest,
				fmt.Sprintf("description cannot exceed %d characters", maxDescriptionLength)).
				WithDetails(map[string]any{"length": utf8.RuneCountInString(description)})
		}
		validated.Description = &description
	}
	return validated, nil
}

// ValidateQuantity resolves the optional initial quantity, defaulting to 0.
func ValidateQuantity(raw *int) (int, error) {
	if raw == nil {
		return 0, nil
	}
	if *raw < 0 {
		return 0, pkgerrors.New(pkgerrors.CodeInvalidQuantity, "initial_quantity cannot be negative").
			WithDetails(map[string]any{"initial_quantity": *raw})
	}
	return *raw, nil
}

func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", pkgerrors.New(pkgerrors.CodeInvalidName, "name cannot be empty")
	}
	// Limits count characters, not bytes, so multibyte names are not
	// penalized.
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", pkgerrors.New(pkgerrors.CodeInvalidName,
			fmt.Sprintf("name cannot exceed %d characters", maxNameLength)).
			WithDetails(map[string]any{"length": utf8.RuneCountInString(name)})
	}
	return name, nil
}

// NormalizeSKU trims, uppercases, and checks the SKU charset and length.
func NormalizeSKU(raw string) (string, error) {
	sku := strings.ToUpper(strings.TrimSpace(raw))
	if sku == "" {
		return "", pkgerrors.New(pkgerrors.CodeInvalidSku, "sku cannot be empty")
	}
	if utf8.RuneCountInString(sku) > maxSKULength {
		return "", pkgerrors.New(pkgerrors.CodeInvalidSku,
			fmt.Sprintf("sku cannot exceed %d characters", maxSKULength)).
			WithDetails(map[string]any{"length": utf8.RuneCountInString(sku)})
	}
	if !skuPattern.MatchString(sku) {
		return "", pkgerrors.New(pkgerrors.CodeInvalidSku,
			"sku may only contain letters, digits, hyphens, and underscores").
			WithDetails(map[string]any{"sku": sku})
	}
	return sku, nil
}

func validatePrice(price decimal.Decimal) (decimal.Decimal, error) {
	if !price.Equal(price.Round(2)) {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeInvalidPrice,
			"price cannot have more than two decimal places").
			WithDetails(map[string]any{"price": price.String()})
	}
	if price.LessThan(minPrice) {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeInvalidPrice,
			fmt.Sprintf("price must be at least %s", minPrice)).
			WithDetails(map[string]any{"price": price.String()})
	}
	if price.GreaterThan(maxPrice) {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeInvalidPrice,
			fmt.Sprintf("price cannot exceed %s", maxPrice)).
			WithDetails(map[string]any{"price": price.String()})
	}
	return price, nil
}
