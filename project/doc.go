// SPDX-License-Identifier: EPL-2.0

// Package project loads, validates and saves composition documents.
//
// A project is a YAML file:
//
//	version: 1
//	project:
//	  name: demo
//	  sample_rate: 44100
//	  channels: 2
//	  bpm: 120
//	  time_signature: 4/4
//	assets:
//	  - id: kick
//	    path: samples/kick.wav
//	timeline:
//	  - id: t1
//	    asset: kick
//	    start: 0.5
//	    gain_db: -3
//	    ops:
//	      - type: scale
//	        factor: 1.25
//	        preserve_pitch: true
//	      - type: loop
//	        bars: 2
//	mix:
//	  normalize: true
//	export:
//	  path: out.wav
//	  format: wav
//
// Keys missing from the file keep the values of Default. A loaded Project is
// not modified by the renderer.
package project
