// Package segmentation compiles a section tree into a segment tree.
//
// Every section type maps to a Builder in a Registry. A builder creates
// zero or more segments under its parent and may rewrite its own copy of
// the section (setting Next, adding Branches) to delegate further work
// back to the compiler. Builders range from primitives such as "head" and
// "tentacle" up to whole creatures such as "newt" or "tadpole", which are
// themselves just arrangements of smaller sections.
//
// # Branch indexing
//
// After a section is built, its Next section (if any) is compiled as a
// continuation of the last produced segment. Branches then pick their
// parent by Index from the combined list
//
//	produced segments ++ next segments ++ [grandparent]
//
// so index 0 is usually the first segment the section made, and an index
// equal to the number of produced and followed segments attaches to the
// section's own parent. Indices outside that list are logged and skipped.
//
// # Example
//
//	reg, err := segmentation.NewRegistry(logger)
//	if err != nil {
//		return err
//	}
//	body := segmentation.NewCompiler(reg, logger).Compile(section.Section{
//		Type: "tadpole", Count: 10, Size: 100,
//	})
//	head := body[0]
package segmentation
