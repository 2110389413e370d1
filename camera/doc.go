// Package camera drives the deep-zoom viewport: a smooth Van Wijk blend
// between two viewports, and a multi-root zoom rig that chains several
// blends end to end when the start and end points are too many orders of
// magnitude apart for one blend to stay numerically sound (spec.md 4.8).
//
// What:
//
//   - Viewport is the (x, y, w) triple the rest of the engine calls a
//     camera: a center point and a width: (see the Viewport type docs.)
//   - Blend interpolates between two viewports along Van Wijk & Nuij's
//     2003 minimum-perceived-motion path; Duration returns how long that
//     path should take to traverse, proportional to its length.
//   - Rig is the explicitly owned animation state machine: Zoom starts an
//     animation toward a target node, Tick advances it and returns the
//     viewport to draw this frame.
//
// Why:
//
//   - The source kept camera state in file-scope globals; spec.md 9's
//     redesign note retires that in favor of an owned Rig value, so a
//     host can run more than one camera (e.g. a thumbnail view) without
//     them fighting over shared state.
//   - A single Van Wijk blend loses precision once log(w0/w1) grows large
//     (zooming from a leaf a billion nodes deep back out to the root).
//     Rig's multi-root sequence breaks that into a chain of short blends,
//     each expressed in a nearby root's own local frame, so none of them
//     individually spans more than a few orders of magnitude.
//
// Complexity:
//
//   - Blend, Duration: O(1).
//   - Rig.Zoom: O(depth(root) + depth(targetRoot)) to build the root
//     sequence via the LCA.
//   - Rig.Tick: O(depth) per call, for the handful of TransformLocal
//     lookups needed to re-home the current step's viewport.
package camera
