// Package validate проверяет аргументы команд до любого сетевого вызова.
package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"storectl/internal/faults"
)

const (
	// DescriptionFormat задает описание, которое получает созданный продукт.
	DescriptionFormat = "Producto %s creado"
	// PlaceholderImage подставляется в поле image черновика.
	PlaceholderImage = "http://via.placeholder.com/200"
)

var idPattern = regexp.MustCompile(`^[0-9]+$`)

// Draft содержит нормализованные поля черновика продукта.
type Draft struct {
	Title    string
	Price    float64
	Category string
}

// ID проверяет, что token состоит только из цифр, и возвращает значение.
func ID(token string) (int64, error) {
	if !idPattern.MatchString(token) {
		return 0, faults.Validation("id must be numeric")
	}
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, faults.New(faults.ValidationError, "id must be numeric", err)
	}
	return id, nil
}

// Price принимает только конечные числа больше нуля.
func Price(token string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, faults.Validation("invalid price")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, faults.Validation("invalid price")
	}
	return v, nil
}

// CreateDraft проверяет параметры создания продукта.
func CreateDraft(title, price, category string) (Draft, error) {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	if title == "" {
		return Draft{}, faults.Validation("title is required")
	}
	if strings.TrimSpace(price) == "" {
		return Draft{}, faults.Validation("price is required")
	}
	if category == "" {
		return Draft{}, faults.Validation("category is required")
	}
	p, err := Price(price)
	if err != nil {
		return Draft{}, err
	}
	return Draft{Title: title, Price: p, Category: category}, nil
}
