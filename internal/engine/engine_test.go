package engine

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/constrec/internal/catalog"
	domainerrors "github.com/leengari/constrec/internal/domain/errors"
	"github.com/leengari/constrec/internal/domain/schema"
	"github.com/leengari/constrec/internal/testutil"
)

func newTestRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg := catalog.NewRegistry(nil)
	require.NoError(t, reg.Register(testutil.CountriesTable()))
	require.NoError(t, reg.Register(testutil.CurrenciesTable()))
	require.NoError(t, reg.Register(testutil.ValidationTable()))
	require.NoError(t, reg.Register(testutil.BeatlesTable(nil)))
	return reg
}

func TestParse(t *testing.T) {
	cmd, err := Parse(`FINDBY currencies description "US Dollar" flag=true n=3 none=nil`)
	require.NoError(t, err)
	assert.Equal(t, "findby", cmd.Name)
	assert.Equal(t, []string{"currencies", "description", "US Dollar"}, cmd.Args)
	assert.Equal(t, map[string]interface{}{"flag": true, "n": 3, "none": nil}, cmd.Options)

	_, err = Parse("   ")
	assert.Error(t, err)

	_, err = Parse(`find "unterminated`)
	assert.Error(t, err)
}

func TestExecuteFind(t *testing.T) {
	eng := New(newTestRegistry(t))

	res, err := eng.Execute("find countries 3")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"id", "name"}, res.Columns)
	assert.Equal(t, "Estonia", res.Rows[0]["name"])
	assert.Equal(t, 3, res.Rows[0]["id"])

	res, err = eng.Execute("find countries 4")
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, "not found", res.Message)

	res, err = eng.Execute("find countries all")
	require.NoError(t, err)
	assert.Len(t, res.Rows, 3)

	res, err = eng.Execute("find countries first name=Estonia")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 3, res.Rows[0]["id"])

	_, err = eng.Execute("find countries middle")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	res, err = eng.Execute("find countries all ignored=blah")
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	for i, row := range res.Rows {
		assert.Equal(t, i+1, row["id"])
	}

	res, err = eng.Execute("find countries first planet=earth name=Latvia")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 2, res.Rows[0]["id"])
}

func TestParseValueKeepsNonCanonicalNumbers(t *testing.T) {
	assert.Equal(t, 7, ParseValue("7"))
	assert.Equal(t, -3, ParseValue("-3"))
	assert.Equal(t, "007", ParseValue("007"))
	assert.Equal(t, "+1", ParseValue("+1"))
	assert.Equal(t, true, ParseValue("true"))
	assert.Nil(t, ParseValue("null"))
}

func TestExecuteFindByLeadingZeros(t *testing.T) {
	reg := catalog.NewRegistry(nil)
	require.NoError(t, reg.Register(schema.MustNew(schema.Definition{
		Name:    "agents",
		Columns: []string{"code", "name"},
		Data: []interface{}{
			[]interface{}{"7", "seven"},
			[]interface{}{"007", "bond"},
		},
	})))
	eng := New(reg)

	res, err := eng.Execute("findby agents code 007")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "bond", res.Rows[0]["name"])

	res, err = eng.Execute("lookup agents 007")
	require.NoError(t, err)
	assert.Equal(t, "bond", res.Message)
}

func TestExecuteFindBy(t *testing.T) {
	eng := New(newTestRegistry(t))

	res, err := eng.Execute("findby currencies short CAD")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 3, res.Rows[0]["id"])
	assert.Equal(t, "Canadian Dollar", res.Rows[0]["description"])

	res, err = eng.Execute(`findby currencies description "Swiss franc"`)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "CHF", res.Rows[0]["short"])

	_, err = eng.Execute("findby currencies name EUR")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownAttribute)

	_, err = eng.Execute("findby currencies short")
	assert.Error(t, err)
}

func TestExecuteLookupAndConstants(t *testing.T) {
	eng := New(newTestRegistry(t))

	res, err := eng.Execute("lookup currencies EUR")
	require.NoError(t, err)
	assert.Equal(t, "Euro", res.Message)

	_, err = eng.Execute("lookup currencies BadValue")
	assert.ErrorIs(t, err, domainerrors.ErrConstantNotFound)

	res, err = eng.Execute("const beatles JOHN")
	require.NoError(t, err)
	assert.Equal(t, "1", res.Message)

	_, err = eng.Execute("const beatles NICK")
	assert.ErrorIs(t, err, domainerrors.ErrUndefinedReference)

	_, err = eng.Execute("const for_validation JOHN")
	assert.ErrorIs(t, err, domainerrors.ErrUndefinedReference)

	res, err = eng.Execute("constants beatles")
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)
	assert.Equal(t, "GEORGE", res.Rows[0]["constant"])
}

func TestExecutePluck(t *testing.T) {
	eng := New(newTestRegistry(t))

	res, err := eng.Execute("pluck for_validation names")
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, "friend", res.Rows[2]["names"])

	res, err = eng.Execute("pluck currencies short")
	require.NoError(t, err)
	assert.Len(t, res.Rows, 5)

	_, err = eng.Execute("pluck currencies names")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownAttribute)
}

func TestExecuteOptions(t *testing.T) {
	eng := New(newTestRegistry(t))

	res, err := eng.Execute("options countries include_null=true null_text=n/a null_value=0 ignored=blah")
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)
	assert.Equal(t, map[string]interface{}{"label": "n/a", "value": 0}, res.Rows[0])
	assert.Equal(t, map[string]interface{}{"label": "Lithuania", "value": 1}, res.Rows[1])

	res, err = eng.Execute("options currencies display=description value=short")
	require.NoError(t, err)
	require.Len(t, res.Rows, 5)
	assert.Equal(t, map[string]interface{}{"label": "Euro", "value": "EUR"}, res.Rows[0])
}

func TestExecuteMisc(t *testing.T) {
	eng := New(newTestRegistry(t))

	res, err := eng.Execute("tables")
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)
	assert.Equal(t, "beatles", res.Rows[0]["table"])
	assert.Equal(t, 4, res.Rows[0]["constants"])

	res, err = eng.Execute("count currencies")
	require.NoError(t, err)
	assert.Equal(t, "5", res.Message)

	res, err = eng.Execute("describe currencies")
	require.NoError(t, err)
	assert.Len(t, res.Rows, 3)

	res, err = eng.Execute("help")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "findby")

	_, err = eng.Execute("count planets")
	assert.Error(t, err)

	_, err = eng.Execute("explode currencies")
	assert.Error(t, err)

	_, err = eng.Execute("count")
	assert.Error(t, err)
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng := New(newTestRegistry(t))
	eng.AddObserver(NewLoggingObserver(logger))

	_, err := eng.Execute("count countries")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "command_lifecycle")
	assert.Contains(t, out, "event=parse_start")
	assert.Contains(t, out, "event=exec_end")
	assert.Contains(t, out, "query_id=")
}
