package soapxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScalar(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		tag  string
		want string
	}{
		{
			name: "simple tag",
			doc:  `<Order><Total>42.50</Total></Order>`,
			tag:  "Total",
			want: "42.50",
		},
		{
			name: "case insensitive",
			doc:  `<order><TOTAL>10</TOTAL></order>`,
			tag:  "Total",
			want: "10",
		},
		{
			name: "tag with attributes",
			doc:  `<Total xmlns="http://example.com" nil="false"> 99.90 </Total>`,
			tag:  "Total",
			want: "99.90",
		},
		{
			name: "first occurrence wins",
			doc:  `<Total>1</Total><Total>2</Total>`,
			tag:  "Total",
			want: "1",
		},
		{
			name: "absent tag returns empty",
			doc:  `<Order><Number>7</Number></Order>`,
			tag:  "Total",
			want: "",
		},
		{
			name: "whitespace before closing bracket",
			doc:  `<Total>5</Total >`,
			tag:  "Total",
			want: "5",
		},
		{
			name: "malformed sibling does not break extraction",
			doc:  `<Broken><Total>3</Total>`,
			tag:  "Total",
			want: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractScalar(tt.doc, tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractScalar_EmptyDocument(t *testing.T) {
	_, err := ExtractScalar("", "Total")
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = ExtractScalar("   \n ", "Total")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractRepeated(t *testing.T) {
	doc := `
		<Shifts>
			<Shift><EmployeeId>1</EmployeeId></Shift>
			<Shift attr="x"><EmployeeId>2</EmployeeId></Shift>
			<Shift><EmployeeId>3</EmployeeId></Shift>
		</Shifts>`

	blocks, err := ExtractRepeated(doc, "Shift")
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	// Document order preserved, each block carries its own inner XML.
	first, err := ExtractScalar(blocks[0], "EmployeeId")
	require.NoError(t, err)
	assert.Equal(t, "1", first)

	last, err := ExtractScalar(blocks[2], "EmployeeId")
	require.NoError(t, err)
	assert.Equal(t, "3", last)
}

func TestExtractRepeated_NoMatches(t *testing.T) {
	blocks, err := ExtractRepeated(`<Shifts></Shifts>`, "Shift")
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestExtractRepeated_EmptyDocument(t *testing.T) {
	_, err := ExtractRepeated("", "Shift")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
