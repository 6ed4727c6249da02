// package models defines the data model for the playlist library and playback core.
package models
