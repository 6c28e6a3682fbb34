package uml

import (
	"fmt"
	"strings"
)

// Kind identifies the sort of a model object.
type Kind string

const (
	KindPackage        Kind = "package"
	KindClass          Kind = "class"
	KindAttribute      Kind = "attribute"
	KindOperation      Kind = "operation"
	KindParameter      Kind = "parameter"
	KindAssociation    Kind = "association"
	KindAssociationEnd Kind = "association end"
	KindDependency     Kind = "dependency"
	KindDiagram        Kind = "diagram"
)

// ValidatedKinds lists the kinds that own a validator, in validation order.
var ValidatedKinds = []Kind{
	KindPackage,
	KindClass,
	KindAttribute,
	KindOperation,
	KindAssociation,
	KindDependency,
	KindDiagram,
}

// IsValidatedKind reports whether k has its own validator.
func IsValidatedKind(k Kind) bool {
	for _, v := range ValidatedKinds {
		if v == k {
			return true
		}
	}
	return false
}

// Nature is the standards dialect a model object belongs to.
type Nature string

const (
	CIM      Nature = "CIM"
	IEC61850 Nature = "IEC61850"
)

// Natures enumerates all recognized natures.
var Natures = []Nature{CIM, IEC61850}

// ParseNature accepts a nature name in any letter case.
func ParseNature(s string) (Nature, error) {
	for _, n := range Natures {
		if strings.EqualFold(string(n), s) {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown nature %q (valid: CIM, IEC61850)", s)
}

// OwningGroup is the working group responsible for a part of the model.
type OwningGroup string

const (
	WG10          OwningGroup = "WG10"
	WG13          OwningGroup = "WG13"
	WG14          OwningGroup = "WG14"
	WG16          OwningGroup = "WG16"
	WG17          OwningGroup = "WG17"
	WG18          OwningGroup = "WG18"
	WG19          OwningGroup = "WG19"
	JWG25         OwningGroup = "JWG25"
	OtherCIM      OwningGroup = "OTHER_CIM"
	OtherIEC61850 OwningGroup = "OTHER_IEC61850"
)

// OwningGroups enumerates all recognized owning groups.
var OwningGroups = []OwningGroup{
	WG10, WG13, WG14, WG16, WG17, WG18, WG19, JWG25, OtherCIM, OtherIEC61850,
}

// ParseOwningGroup accepts an owning group name in any letter case.
func ParseOwningGroup(s string) (OwningGroup, error) {
	for _, g := range OwningGroups {
		if strings.EqualFold(string(g), s) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown owning group %q", s)
}

// DefaultOwner is the group assumed for objects whose owner is not known.
func DefaultOwner(n Nature) OwningGroup {
	if n == IEC61850 {
		return OtherIEC61850
	}
	return OtherCIM
}

// Visibility is the UML visibility of a model object.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"
	Internal  Visibility = "package"
)

// Direction of an operation parameter.
type Direction string

const (
	In     Direction = "in"
	Out    Direction = "out"
	InOut  Direction = "inout"
	Return Direction = "return"
)

// Aggregation of an association end.
type Aggregation string

const (
	AggregationNone      Aggregation = "none"
	AggregationShared    Aggregation = "shared"
	AggregationComposite Aggregation = "composite"
)
