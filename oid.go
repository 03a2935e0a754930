package pgwire

// OID is a PostgreSQL object identifier naming a data type or other catalog
// object. The codec treats OIDs as opaque: unrecognized values pass through
// undisturbed.
type OID uint32

// Well-known data type OIDs.
const (
	BoolOID        OID = 16
	ByteaOID       OID = 17
	NameOID        OID = 19
	Int8OID        OID = 20
	Int2OID        OID = 21
	Int4OID        OID = 23
	TextOID        OID = 25
	OIDOID         OID = 26
	JSONOID        OID = 114
	Float4OID      OID = 700
	Float8OID      OID = 701
	BPCharOID      OID = 1042
	VarcharOID     OID = 1043
	DateOID        OID = 1082
	TimeOID        OID = 1083
	TimestampOID   OID = 1114
	TimestamptzOID OID = 1184
	NumericOID     OID = 1700
	UUIDOID        OID = 2950
	JSONBOID       OID = 3802
	JSONBArrayOID  OID = 3807
)
