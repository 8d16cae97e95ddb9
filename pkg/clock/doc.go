// Package clock provides frame schedulers for wheel.Engine: Manual for
// deterministic, time-mocked timelines and Ticker for wall-clock frames.
package clock
