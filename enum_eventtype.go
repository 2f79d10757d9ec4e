package crcforge

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// EventType indicates the type of an Event.
type EventType byte

const (
	// ForgeBeginEvent indicates that the insertion offset was accepted and
	// forging is about to start.
	ForgeBeginEvent EventType = iota

	// PrefixDoneEvent indicates that the forward phase over the prefix has
	// finished.  Event.State holds the raw forward state.
	PrefixDoneEvent

	// SuffixDoneEvent indicates that the backward phase over the suffix has
	// finished.  Event.State holds the raw state the patch must produce.
	SuffixDoneEvent

	// PatchDoneEvent indicates that the patch has been derived.
	PatchDoneEvent

	// ForgeEndEvent indicates that the forged output has been assembled.
	ForgeEndEvent
)

var eventTypeData = []enumhelper.EnumData{
	{GoName: "ForgeBeginEvent", Name: "forge-begin"},
	{GoName: "PrefixDoneEvent", Name: "prefix-done"},
	{GoName: "SuffixDoneEvent", Name: "suffix-done"},
	{GoName: "PatchDoneEvent", Name: "patch-done"},
	{GoName: "ForgeEndEvent", Name: "forge-end"},
}

// GoString returns the Go string representation of this EventType constant.
func (e EventType) GoString() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).GoName
}

// String returns the string representation of this EventType constant.
func (e EventType) String() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).Name
}

// MarshalJSON returns the JSON representation of this EventType constant.
func (e EventType) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("EventType", eventTypeData, uint(e))
}

var _ fmt.GoStringer = EventType(0)
var _ fmt.Stringer = EventType(0)
