// Package present выводит результат операции пользователю.
package present

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/itchyny/gojq"

	"storectl/internal/core"
	"storectl/internal/faults"
)

const indent = "  "

// Presenter пишет успешные ответы в Out, ошибки в Err.
type Presenter struct {
	Out   io.Writer
	Err   io.Writer
	query *gojq.Code
}

// New создает presenter; непустой expr компилируется как jq-фильтр.
func New(out, errOut io.Writer, expr string) (*Presenter, error) {
	p := &Presenter{Out: out, Err: errOut}
	if strings.TrimSpace(expr) == "" {
		return p, nil
	}
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, faults.New(faults.UsageError, "invalid jq expression", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, faults.New(faults.UsageError, "invalid jq expression", err)
	}
	p.query = code
	return p, nil
}

// Success форматирует ответ целиком и только затем пишет его.
func (p *Presenter) Success(resp core.Response) error {
	block, err := p.Format(resp)
	if err != nil {
		return err
	}
	if _, err := p.Out.Write(block); err != nil {
		return faults.Internal("write output", err)
	}
	return nil
}

// Format возвращает блок "<label>:\n<json>\n".
func (p *Presenter) Format(resp core.Response) ([]byte, error) {
	data := resp.Data
	if len(bytes.TrimSpace(data)) == 0 {
		data = json.RawMessage("null")
	}

	var buf bytes.Buffer
	if resp.Label != "" {
		buf.WriteString(resp.Label)
		buf.WriteString(":\n")
	}
	if p.query == nil {
		if err := json.Indent(&buf, data, "", indent); err != nil {
			return nil, faults.Protocol("invalid response body", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}

	results, err := p.run(data)
	if err != nil {
		return nil, err
	}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	for _, v := range results {
		if err := enc.Encode(v); err != nil {
			return nil, faults.Internal("encode jq result", err)
		}
	}
	return buf.Bytes(), nil
}

func (p *Presenter) run(data json.RawMessage) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var input any
	if err := dec.Decode(&input); err != nil {
		return nil, faults.Protocol("invalid response body", err)
	}
	var results []any
	iter := p.query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, faults.New(faults.ValidationError, "jq evaluation failed", err)
		}
		results = append(results, v)
	}
	return results, nil
}

// Failure пишет строку "error: <Kind>: <message>" в Err.
func (p *Presenter) Failure(err error) {
	if err == nil {
		return
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	fmt.Fprintf(p.Err, "error: %s: %s\n", faults.KindOf(err), msg)
}
