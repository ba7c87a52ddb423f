package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Topology structure (malformed input)
	TopInfo              Code = 1000
	TopEmptyDomain       Code = 1001
	TopDuplicateDomain   Code = 1002
	TopDuplicateMember   Code = 1003
	TopDuplicateEncoding Code = 1004
	TopEncodingOverflow  Code = 1005
	TopNonContiguous     Code = 1006
	TopBadWidth          Code = 1007
	TopBadName           Code = 1008
	TopBadBase           Code = 1009

	// Symbol naming
	NamInfo           Code = 2000
	NamValueCollision Code = 2001
	NamTypeCollision  Code = 2002
	NamEmptyName      Code = 2003

	// Alias resolution
	AlsInfo              Code = 3000
	AlsMissingExternal   Code = 3001
	AlsDuplicateExternal Code = 3002
	AlsBadExternal       Code = 3003

	// I/O
	IOLoadFileError  Code = 4001
	IODecodeError    Code = 4002
	IOWriteFileError Code = 4003
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		TopInfo:              "Topology information",
		TopEmptyDomain:       "Domain has no members",
		TopDuplicateDomain:   "Duplicate domain name",
		TopDuplicateMember:   "Duplicate member name",
		TopDuplicateEncoding: "Duplicate member encoding",
		TopEncodingOverflow:  "Encoding exceeds domain bit width",
		TopNonContiguous:     "Member encodings are not contiguous",
		TopBadWidth:          "Invalid domain bit width",
		TopBadName:           "Invalid identifier",
		TopBadBase:           "Invalid encoding base",
		NamInfo:              "Naming information",
		NamValueCollision:    "Value names collide after normalization",
		NamTypeCollision:     "Type names collide after normalization",
		NamEmptyName:         "Name normalizes to an empty identifier",
		AlsInfo:              "Alias information",
		AlsMissingExternal:   "Domain has no external name mapping",
		AlsDuplicateExternal: "External name mapped by more than one domain",
		AlsBadExternal:       "External name is not a valid identifier",
		IOLoadFileError:      "I/O load file error",
		IODecodeError:        "Topology file decode error",
		IOWriteFileError:     "I/O write file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TOP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("ALS%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
