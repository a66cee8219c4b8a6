// Package reveal implements the scroll-triggered staggered reveal used by
// list sections of the site.
//
// A VariantSet declares the hidden and visible looks of an element and
// the transition between them. A Controller owns one reveal region: it
// keeps the container and its children hidden until the region's
// visible fraction crosses a threshold, latches, and then moves the
// container and each child to visible, child i starting i stagger
// intervals after the first. Visibility is pushed in through Observe;
// the controller never polls. When no viewport exists the region is
// revealed immediately.
package reveal
