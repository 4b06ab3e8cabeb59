package iup

// Ihandle is the address of a native IUP object (a widget, dialog, timer or
// image). The native library is the sole owner of every instance: this side
// only stores and passes the value and never frees it. The zero value is a
// valid "no handle" state and is accepted by the native library wherever a
// NULL element is allowed.
type Ihandle uintptr

// IsNil reports whether ih is the "no handle" value.
func (ih Ihandle) IsNil() bool { return ih == 0 }

// Icallback is the Go form of the native event callback. The return value
// must be one of Ignore, Default, Close or Continue.
type Icallback func(ih Ihandle) int32

// Return codes shared by the native entry points.
const (
	NoError   int32 = 0
	Error     int32 = 1
	Opened    int32 = -1
	Invalid   int32 = -1
	InvalidID int32 = -10
)

// Callback return values.
const (
	Ignore   int32 = -1
	Default  int32 = -2
	Close    int32 = -3
	Continue int32 = -4
)

// Window positioning values accepted by ShowXY.
const (
	Center       int32 = 0xFFFF
	Left         int32 = 0xFFFE
	Right        int32 = 0xFFFD
	MousePos     int32 = 0xFFFC
	Current      int32 = 0xFFFB
	CenterParent int32 = 0xFFFA
	LeftParent   int32 = 0xFFF9
	RightParent  int32 = 0xFFF8

	Top          = Left
	Bottom       = Right
	TopParent    = LeftParent
	BottomParent = RightParent
)

// Attribute and callback names understood by the native library.
const (
	Action        = "ACTION"
	ActionCB      = "ACTION_CB"
	BringFront    = "BRINGFRONT"
	Icon          = "ICON"
	Name          = "NAME"
	Run           = "RUN"
	System        = "SYSTEM"
	SystemVersion = "SYSTEMVERSION"
	Time          = "TIME"
	Title         = "TITLE"
	Value         = "VALUE"

	Yes = "YES"
	No  = "NO"
)

// utf8Mode is set to Yes right after the native library is opened so every
// string crossing the boundary is UTF-8.
const utf8Mode = "UTF8MODE"
