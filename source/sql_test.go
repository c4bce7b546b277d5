package source

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: db, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestLoadSQL(t *testing.T) {
	gdb, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"comision", "valoracion_curso", "aprendizajes_adquiridos"}).
		AddRow([]byte("A"), []byte("Sí"), []byte("python")).
		AddRow("B", "No", nil)
	mock.ExpectQuery("SELECT \\* FROM respuestas_informe").WillReturnRows(rows)

	set, err := LoadSQL(gdb, "respuestas_informe", testSchema())
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, "A", set[0].Group)
	assert.Equal(t, "python", set[0].Answers["aprendizajes_adquiridos"])
	_, ok := set[1].Answer("aprendizajes_adquiridos")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSQLMissingColumn(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM respuestas").
		WillReturnRows(sqlmock.NewRows([]string{"comision"}).AddRow("A"))

	_, err := LoadSQL(gdb, "respuestas", testSchema())
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadSQLRejectsTableName(t *testing.T) {
	gdb, _ := newMockDB(t)
	for _, table := range []string{"", "a; DROP TABLE b", "a b", "db.t.x"} {
		_, err := LoadSQL(gdb, table, testSchema())
		assert.Error(t, err, table)
	}
}

func TestCellStrings(t *testing.T) {
	assert.Equal(t,
		[]string{"", "a", "b", "42"},
		cellStrings([]interface{}{nil, []byte("a"), "b", int64(42)}))
}
