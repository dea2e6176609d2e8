package products

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"storectl/internal/core"
	"storectl/internal/faults"
	"storectl/internal/validate"
)

const basePath = "/" + core.ResourceProducts

// Requester выполняет один запрос к удаленному API.
type Requester interface {
	Request(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// Draft тело запроса на создание продукта.
type Draft struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// NewDraft собирает черновик из проверенных полей.
func NewDraft(d validate.Draft) Draft {
	return Draft{
		Title:       d.Title,
		Price:       d.Price,
		Category:    d.Category,
		Description: fmt.Sprintf(validate.DescriptionFormat, d.Title),
		Image:       validate.PlaceholderImage,
	}
}

// Module обслуживает коллекцию products.
type Module struct {
	client Requester
}

// New создает модуль поверх клиента API.
func New(client Requester) *Module {
	return &Module{client: client}
}

func (m *Module) Name() string { return core.ResourceProducts }

func (m *Module) Init(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("products module: client is nil")
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, cmd core.Command) (core.Response, error) {
	switch c := cmd.(type) {
	case core.ListCommand:
		return m.list(ctx)
	case core.GetCommand:
		return m.get(ctx, c.ID)
	case core.CreateCommand:
		return m.create(ctx, c.Params)
	case core.DeleteCommand:
		return m.remove(ctx, c.ID)
	default:
		return core.Response{}, faults.Usage(fmt.Sprintf("command %T not supported", cmd))
	}
}

func (m *Module) list(ctx context.Context) (core.Response, error) {
	data, err := m.client.Request(ctx, http.MethodGet, basePath, nil)
	if err != nil {
		return core.Response{}, err
	}
	return core.Response{Verb: core.VerbList, Label: "Products retrieved", Data: data}, nil
}

func (m *Module) get(ctx context.Context, id int64) (core.Response, error) {
	data, err := m.client.Request(ctx, http.MethodGet, itemPath(id), nil)
	if err != nil {
		return core.Response{}, err
	}
	return core.Response{Verb: core.VerbGet, Label: "Product retrieved", Data: data}, nil
}

func (m *Module) create(ctx context.Context, params []string) (core.Response, error) {
	if len(params) != 3 {
		return core.Response{}, faults.Usage("missing parameters, expected <title> <price> <category>")
	}
	checked, err := validate.CreateDraft(params[0], params[1], params[2])
	if err != nil {
		return core.Response{}, err
	}
	data, err := m.client.Request(ctx, http.MethodPost, basePath, NewDraft(checked))
	if err != nil {
		return core.Response{}, err
	}
	return core.Response{Verb: core.VerbCreate, Label: "Product created", Data: data}, nil
}

// remove возвращает ответ сервиса как есть, даже если он пуст.
func (m *Module) remove(ctx context.Context, id int64) (core.Response, error) {
	data, err := m.client.Request(ctx, http.MethodDelete, itemPath(id), nil)
	if err != nil {
		return core.Response{}, err
	}
	return core.Response{Verb: core.VerbDelete, Label: "Product deleted", Data: data}, nil
}

func itemPath(id int64) string {
	return basePath + "/" + strconv.FormatInt(id, 10)
}
