package core

import (
	"fmt"
	"strings"

	"storectl/internal/faults"
	"storectl/internal/validate"
)

// Usage строка подсказки по формату команды.
const Usage = "<verb> <resource>[/<id>] [params...]"

const createParams = "<title> <price> <category>"

// ParseCommand переводит аргументы в Command.
// Формат: <verb> <resource>[/<id>] [params...]
func ParseCommand(args []string) (Command, error) {
	if len(args) < 2 {
		return nil, faults.Usage("missing arguments, usage: " + Usage)
	}
	verb := strings.ToUpper(strings.TrimSpace(args[0]))
	token := strings.TrimSpace(args[1])
	params := args[2:]

	switch verb {
	case "GET", "POST", "DELETE":
	default:
		return nil, faults.Usage(fmt.Sprintf("unsupported method %s, use GET, POST or DELETE", verb))
	}

	name, idSegment, hasID := strings.Cut(token, "/")
	if name != ResourceProducts || (verb == "POST" && hasID) {
		return nil, faults.Usage(fmt.Sprintf("unsupported resource %s, use %s or %s/<id>", token, ResourceProducts, ResourceProducts))
	}

	var id int64
	if hasID {
		parsed, err := validate.ID(idSegment)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	switch verb {
	case "GET":
		if len(params) > 0 {
			return nil, faults.Usage("unexpected parameters for GET")
		}
		if hasID {
			return GetCommand{Name: name, ID: id}, nil
		}
		return ListCommand{Name: name}, nil
	case "POST":
		if len(params) < 3 {
			return nil, faults.Usage("missing parameters, expected " + createParams)
		}
		if len(params) > 3 {
			return nil, faults.Usage("too many parameters, expected " + createParams)
		}
		return CreateCommand{Name: name, Params: append([]string(nil), params...)}, nil
	default:
		if !hasID {
			return nil, faults.Usage("id required, usage: DELETE " + ResourceProducts + "/<id>")
		}
		if len(params) > 0 {
			return nil, faults.Usage("unexpected parameters for DELETE")
		}
		return DeleteCommand{Name: name, ID: id}, nil
	}
}
