// Package pipeline implements incremental tracing of a pointer stroke as a
// pipe of three stream filters.
/*

Tracing means generating vector graphics from discrete points. A bitmap is a
batch, and tracing it is a batch operation: all data is known before you
begin. Incremental (also called dynamic) means generating graphics while the
user works, before the stroke is complete. The filters and the fitting
invariants follow the potrace library for tracing bitmap images, by Peter
Selinger:

   Potrace: a polygon-based tracing algorithm -- Peter Selinger
   http://potrace.sourceforge.net/potrace.pdf

The main differences to potrace: the input here is a live pointer path, with
gaps (when the system is busy) and with timing; the fit is the first found,
not the globally optimal one, since the path is not complete while fitting;
and reversals along an axis (spikes) produce turns instead of being filtered
out as noise, since a deliberate pause-and-reverse of the pen is intent, not
noise.

The pipe

Positions are pushed one at a time into the turn stage. Each filter keeps a
small history of its inputs, rolling forward when it recognizes an object
the next filter needs:

   positions  -> TurnGenerator  -> turns (vertices between axis-aligned runs)
   turns      -> LineGenerator  -> path lines (one vector per pixel-true run)
   path lines -> CurveGenerator -> segments (straight or cubic), cuspness

The pipeline lags the pointer by whatever structure is still pending. Two
things flush the lag: a forced sample (the caller re-delivers the last known
position when its pause timer fires; the user sees the drawn path catch up,
and can pause deliberately to make a cusp) and closing the pipe at the end
of the stroke. Closing flushes each stage in pipe order, because closing a
stage synchronously pushes final values into the next.

Each stage is an explicit state machine with a push method returning any
outputs recognized so far, plus a close method. There is no queuing or
buffering across samples beyond the fixed two-slot history per stage, and
no concurrency: one sample is processed to completion before the next.

# License

Copyright (c) Lloyd Konneker

This is free software, covered by the GNU General Public License.

Please refer to the license file for more information.
*/
package pipeline
