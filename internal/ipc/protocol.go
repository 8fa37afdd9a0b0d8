package ipc

const (
	ObjectPath    = "/io/github/timelyhq/timely"
	InterfaceName = "io.github.timelyhq.timely.Manager"
	ServiceName   = "io.github.timelyhq.timely"
)
