package core

import (
	"context"
	"encoding/json"
)

// Verb описывает операцию над ресурсом.
type Verb string

const (
	VerbList   Verb = "LIST"
	VerbGet    Verb = "GET"
	VerbCreate Verb = "CREATE"
	VerbDelete Verb = "DELETE"
)

// ResourceProducts единственный поддерживаемый ресурс.
const ResourceProducts = "products"

// Command результат разбора аргументов; у каждой операции свой тип.
type Command interface {
	Verb() Verb
	Resource() string
	isCommand()
}

// ListCommand запрашивает всю коллекцию.
type ListCommand struct {
	Name string
}

// GetCommand запрашивает один элемент по идентификатору.
type GetCommand struct {
	Name string
	ID   int64
}

// CreateCommand создает элемент из позиционных параметров (title, price, category).
type CreateCommand struct {
	Name   string
	Params []string
}

// DeleteCommand удаляет элемент по идентификатору.
type DeleteCommand struct {
	Name string
	ID   int64
}

func (c ListCommand) Verb() Verb   { return VerbList }
func (c GetCommand) Verb() Verb    { return VerbGet }
func (c CreateCommand) Verb() Verb { return VerbCreate }
func (c DeleteCommand) Verb() Verb { return VerbDelete }

func (c ListCommand) Resource() string   { return c.Name }
func (c GetCommand) Resource() string    { return c.Name }
func (c CreateCommand) Resource() string { return c.Name }
func (c DeleteCommand) Resource() string { return c.Name }

func (ListCommand) isCommand()   {}
func (GetCommand) isCommand()    {}
func (CreateCommand) isCommand() {}
func (DeleteCommand) isCommand() {}

// Response описывает успешный результат операции.
type Response struct {
	Verb  Verb            `json:"verb"`
	Label string          `json:"label"`
	Data  json.RawMessage `json:"data"`
}

// CommandProvider определяет контракт для модулей ресурсов.
type CommandProvider interface {
	Name() string
	Init(ctx context.Context) error
	Execute(ctx context.Context, cmd Command) (Response, error)
}
