// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ   = ord.NewPtrSer[float64](varint.Float64)
	ptrbUv9IkQO5ΔkIum452wHfRAΞΞ   = ord.NewPtrSer[string](ord.String)
	ptrΣWZbFSΣdyPrd3GA8Jr44xwΞΞ   = ord.NewPtrSer[bool](ord.Bool)
	sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ = ord.NewSliceSer[string](ord.String)
	slicesg046Gy7g8GLLxEtDd4VcgΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var CatalogItemMUS = catalogItemMUS{}

type catalogItemMUS struct{}

func (s catalogItemMUS) Marshal(v CatalogItem, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Provider, bs[n:])
	n += ord.String.Marshal(v.Region, bs[n:])
	n += ord.String.Marshal(v.Condition, bs[n:])
	n += ord.String.Marshal(v.Channel, bs[n:])
	n += ord.String.Marshal(v.LineType, bs[n:])
	n += varint.Float64.Marshal(v.PromotionPrice, bs[n:])
	n += varint.Float64.Marshal(v.OriginalPrice, bs[n:])
	n += varint.Float64.Marshal(v.OverageRate, bs[n:])
	n += varint.Float64.Marshal(v.DataAmountGB, bs[n:])
	n += sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ.Marshal(v.Roaming, bs[n:])
	n += ord.Bool.Marshal(v.BYODOrTerm, bs[n:])
	n += ord.String.Marshal(v.FreeLongDistance, bs[n:])
	n += varint.Float64.Marshal(v.ActivationFee, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.PromoStartDate, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.PromoEndDate, bs[n:])
	n += ord.String.Marshal(v.Code, bs[n:])
	n += ord.String.Marshal(v.Tier, bs[n:])
	n += slicesg046Gy7g8GLLxEtDd4VcgΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s catalogItemMUS) Unmarshal(bs []byte) (v CatalogItem, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Provider, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Region, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Condition, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Channel, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LineType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PromotionPrice, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OriginalPrice, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OverageRate, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DataAmountGB, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Roaming, n1, err = sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BYODOrTerm, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FreeLongDistance, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ActivationFee, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PromoStartDate, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PromoEndDate, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Code, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tier, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicesg046Gy7g8GLLxEtDd4VcgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s catalogItemMUS) Size(v CatalogItem) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Provider)
	size += ord.String.Size(v.Region)
	size += ord.String.Size(v.Condition)
	size += ord.String.Size(v.Channel)
	size += ord.String.Size(v.LineType)
	size += varint.Float64.Size(v.PromotionPrice)
	size += varint.Float64.Size(v.OriginalPrice)
	size += varint.Float64.Size(v.OverageRate)
	size += varint.Float64.Size(v.DataAmountGB)
	size += sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ.Size(v.Roaming)
	size += ord.Bool.Size(v.BYODOrTerm)
	size += ord.String.Size(v.FreeLongDistance)
	size += varint.Float64.Size(v.ActivationFee)
	size += raw.TimeUnixMicro.Size(v.PromoStartDate)
	size += raw.TimeUnixMicro.Size(v.PromoEndDate)
	size += ord.String.Size(v.Code)
	size += ord.String.Size(v.Tier)
	size += slicesg046Gy7g8GLLxEtDd4VcgΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s catalogItemMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicesg046Gy7g8GLLxEtDd4VcgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var RequirementStateMUS = requirementStateMUS{}

type requirementStateMUS struct{}

func (s requirementStateMUS) Marshal(v RequirementState, bs []byte) (n int) {
	n = ptrbUv9IkQO5ΔkIum452wHfRAΞΞ.Marshal(v.CurrentProvider, bs)
	n += ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Marshal(v.TargetPrice, bs[n:])
	n += ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Marshal(v.TargetData, bs[n:])
	n += sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ.Marshal(v.Roaming, bs[n:])
	n += ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Marshal(v.MinDataGB, bs[n:])
	return n + ptrΣWZbFSΣdyPrd3GA8Jr44xwΞΞ.Marshal(v.BYOD, bs[n:])
}

func (s requirementStateMUS) Unmarshal(bs []byte) (v RequirementState, n int, err error) {
	v.CurrentProvider, n, err = ptrbUv9IkQO5ΔkIum452wHfRAΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.TargetPrice, n1, err = ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TargetData, n1, err = ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Roaming, n1, err = sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MinDataGB, n1, err = ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BYOD, n1, err = ptrΣWZbFSΣdyPrd3GA8Jr44xwΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s requirementStateMUS) Size(v RequirementState) (size int) {
	size = ptrbUv9IkQO5ΔkIum452wHfRAΞΞ.Size(v.CurrentProvider)
	size += ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Size(v.TargetPrice)
	size += ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Size(v.TargetData)
	size += sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ.Size(v.Roaming)
	size += ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Size(v.MinDataGB)
	return size + ptrΣWZbFSΣdyPrd3GA8Jr44xwΞΞ.Size(v.BYOD)
}

func (s requirementStateMUS) Skip(bs []byte) (n int, err error) {
	n, err = ptrbUv9IkQO5ΔkIum452wHfRAΞΞ.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceBsPNfΔvGIt0JsMDUxMB4wgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrKΣs5x91ΣYΣtjbuwKk4z17AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrΣWZbFSΣdyPrd3GA8Jr44xwΞΞ.Skip(bs[n:])
	n += n1
	return
}

var RequirementRecordMUS = requirementRecordMUS{}

type requirementRecordMUS struct{}

func (s requirementRecordMUS) Marshal(v RequirementRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.SessionID, bs)
	n += RequirementStateMUS.Marshal(v.Requirements, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s requirementRecordMUS) Unmarshal(bs []byte) (v RequirementRecord, n int, err error) {
	v.SessionID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Requirements, n1, err = RequirementStateMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s requirementRecordMUS) Size(v RequirementRecord) (size int) {
	size = ord.String.Size(v.SessionID)
	size += RequirementStateMUS.Size(v.Requirements)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s requirementRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = RequirementStateMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
