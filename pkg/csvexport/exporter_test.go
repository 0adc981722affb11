package csvexport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/pkg/csvexport"
)

func TestFlatten_AplanaMapasAnidados(t *testing.T) {
	flat := csvexport.Flatten(map[string]any{
		"productId": 3,
		"category":  map[string]any{"id": 1, "name": "Bebidas"},
	}, "")

	assert.Equal(t, 3, flat["productId"])
	assert.Equal(t, 1, flat["category_id"])
	assert.Equal(t, "Bebidas", flat["category_name"])
	assert.NotContains(t, flat, "category", "la clave anidada original no debe sobrevivir")
}

func TestMarshal_RespetaOrdenDeHeaders(t *testing.T) {
	out := csvexport.Marshal(
		[]string{"id", "name", "stock"},
		[]csvexport.Row{
			{"name": "Arroz", "id": 1, "stock": 12},
			{"name": "Frijol", "id": 2, "stock": 7},
		},
	)

	assert.Equal(t, "id,name,stock\n1,Arroz,12\n2,Frijol,7", out)
}

func TestMarshal_EscapaComasYComillas(t *testing.T) {
	out := csvexport.Marshal(
		[]string{"name", "notes"},
		[]csvexport.Row{
			{"name": `Café "premium"`, "notes": "molido, 500g"},
		},
	)

	assert.Equal(t, "name,notes\n\"Café \"\"premium\"\"\",\"molido, 500g\"", out)
}

func TestMarshal_ValorAusenteQuedaVacio(t *testing.T) {
	out := csvexport.Marshal(
		[]string{"id", "barcode"},
		[]csvexport.Row{{"id": 1}},
	)

	assert.Equal(t, "id,barcode\n1,", out)
}

func TestToLatin1_PreservaAcentos(t *testing.T) {
	out, err := csvexport.ToLatin1("name\nAzúcar")
	require.NoError(t, err)

	// 'ú' es 0xFA en ISO-8859-1 (un solo byte, no la secuencia UTF-8).
	assert.Contains(t, string(out), string([]byte{0xFA}))
	assert.NotContains(t, string(out), "ú")
}

func TestToLatin1_SustituyeCaracteresFueraDeLatin1(t *testing.T) {
	out, err := csvexport.ToLatin1("name\n日本")
	require.NoError(t, err)
	assert.NotEmpty(t, out, "caracteres no mapeables se sustituyen, no fallan")
}
