// Package mask implements the boolean missingness masks produced and
// consumed by grinder, together with the small algebra that joins them to
// data.
//
// A Mask has the shape of the array it describes; true means "this
// position is unobserved". The package provides:
//
//   - Combine (logical OR), Not (observed mask), AndNot (indicating mask).
//   - Apply: copy data and overwrite masked positions with a sentinel.
//   - FromSentinel / FillAndGetMask: extract pre-existing missingness.
//   - EffectiveBudget / Budget: how many additional positions a ratio asks for.
//   - Count, CountAxis, Rate and MissingRate summaries.
//
// Every operation returns a new Mask or array; inputs are never modified.
package mask
