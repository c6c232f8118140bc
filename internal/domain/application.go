package domain

import "github.com/wohlbier/taucmdr/internal/schema"

// Application returns the schema provider of the `application create`
// module. All options are feature toggles describing the application
// under measurement.
func Application() schema.Provider {
	s := schema.New("application")
	s.MustAdd(schema.Option{
		Name: "openmp", Kind: schema.KindBool, Default: false,
		Help: "application uses OpenMP",
	})
	s.MustAdd(schema.Option{
		Name: "pthreads", Kind: schema.KindBool, Default: false,
		Help: "application uses POSIX threads",
	})
	s.MustAdd(schema.Option{
		Name: "mpi", Kind: schema.KindBool, Default: false,
		Help: "application uses MPI",
	})
	s.MustAdd(schema.Option{
		Name: "cuda", Kind: schema.KindBool, Default: false,
		Help: "application uses NVIDIA CUDA",
	})
	s.MustAdd(schema.Option{
		Name: "shmem", Kind: schema.KindBool, Default: false,
		Help: "application uses SHMEM",
	})
	s.MustAdd(schema.Option{
		Name: "mpc", Kind: schema.KindBool, Default: false,
		Help: "application uses MPC",
	})
	return provider{title: "application", args: s}
}
