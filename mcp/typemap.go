package mcp

import "fmt"

// ODBC SQL type codes, including the SQL Server vendor extensions
const (
	sqlChar               = 1
	sqlNumeric            = 2
	sqlDecimal            = 3
	sqlInteger            = 4
	sqlSmallint           = 5
	sqlFloat              = 6
	sqlReal               = 7
	sqlDouble             = 8
	sqlVarchar            = 12
	sqlTypeDate           = 91
	sqlTypeTime           = 92
	sqlTypeTimestamp      = 93
	sqlLongVarchar        = -1
	sqlBinary             = -2
	sqlVarbinary          = -3
	sqlLongVarbinary      = -4
	sqlBigint             = -5
	sqlTinyint            = -6
	sqlBit                = -7
	sqlWchar              = -8
	sqlWvarchar           = -9
	sqlWlongVarchar       = -10
	sqlSSVariant          = -150
	sqlSSUDT              = -151
	sqlSSXML              = -152
	sqlSSTime2            = -154
	sqlSSTimestampOffset  = -155
)

var sqlTypeNames = map[int]string{
	sqlChar:              "CHAR",
	sqlVarchar:           "VARCHAR",
	sqlLongVarchar:       "LONGVARCHAR",
	sqlWchar:             "WCHAR",
	sqlWvarchar:          "WVARCHAR",
	sqlWlongVarchar:      "WLONGVARCHAR",
	sqlDecimal:           "DECIMAL",
	sqlNumeric:           "NUMERIC",
	sqlSmallint:          "SMALLINT",
	sqlInteger:           "INTEGER",
	sqlReal:              "REAL",
	sqlFloat:             "FLOAT",
	sqlDouble:            "DOUBLE",
	sqlBit:               "BIT",
	sqlTinyint:           "TINYINT",
	sqlBigint:            "BIGINT",
	sqlBinary:            "BINARY",
	sqlVarbinary:         "VARBINARY",
	sqlLongVarbinary:     "LONGVARBINARY",
	sqlTypeDate:          "DATE",
	sqlTypeTime:          "TIME",
	sqlTypeTimestamp:     "TIMESTAMP",
	sqlSSVariant:         "SQL_VARIANT",
	sqlSSUDT:             "UDT",
	sqlSSXML:             "XML",
	sqlSSTime2:           "TIME",
	sqlSSTimestampOffset: "TIMESTAMPOFFSET",
}

// sqlTypeName maps an ODBC type code to a canonical type name
func sqlTypeName(code int) string {
	if name, ok := sqlTypeNames[code]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", code)
}
