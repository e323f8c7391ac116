// furever es el cliente de terminal de FurEver Pals: login, listado y
// publicación de mascotas, solicitudes de adopción y feed comunitario
// contra el backend configurado (API_HOST/API_PORT o config.yml).
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"furever-pals/internal/api"
	"furever-pals/internal/config"
	"furever-pals/internal/media"
	"furever-pals/internal/platform/httpclient"
	"furever-pals/internal/platform/logger"
	"furever-pals/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	gw, err := httpclient.NewWithBaseURL(cfg.BaseURL(), cfg.HTTPTimeout())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	client := api.New(gw, session.New(), log)

	if cfg.BaseURL() == "" {
		fmt.Println("aviso: API_HOST no está configurado; los comandos de red van a fallar")
	}

	repl(client)
}

func repl(client *api.Client) {
	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Println("FurEver Pals — escribí 'help' para ver los comandos")

	for {
		fmt.Print(prompt(client))
		if !in.Scan() {
			fmt.Println()
			return
		}

		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		ctx := context.Background()
		switch cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "login":
			runLogin(ctx, client, in, args)
		case "logout":
			client.Logout()
			fmt.Println("sesión cerrada")
		case "register":
			runRegister(ctx, client, in)
		case "profile":
			runProfile(ctx, client)
		case "update":
			runUpdate(ctx, client, in)
		case "pets":
			runPets(ctx, client, client.AllPets)
		case "mypets":
			runPets(ctx, client, client.MyPets)
		case "addpet":
			runAddPet(ctx, client, in)
		case "adopt":
			runAdopt(ctx, client, in, args)
		case "feed":
			runFeed(ctx, client)
		case "post":
			runPost(ctx, client, in, args)
		default:
			fmt.Printf("comando desconocido: %s (probá 'help')\n", cmd)
		}
	}
}

func prompt(client *api.Client) string {
	if u, ok := client.Session().Username(); ok {
		return u + "> "
	}
	return "> "
}

func printHelp() {
	fmt.Print(`comandos:
  login [usuario]      iniciar sesión
  logout               cerrar sesión
  register             crear cuenta (interactivo)
  profile              ver mi perfil
  update               editar mi perfil (interactivo)
  pets                 mascotas en adopción
  mypets               mis mascotas publicadas
  addpet               publicar una mascota (interactivo)
  adopt <id>           solicitar adopción
  feed                 posts de la comunidad
  post [texto]         publicar en el feed
  quit                 salir
`)
}

func runLogin(ctx context.Context, client *api.Client, in *bufio.Scanner, args []string) {
	username := ""
	if len(args) > 0 {
		username = args[0]
	} else {
		username = ask(in, "usuario: ")
	}
	password := ask(in, "contraseña: ")

	if err := client.Login(ctx, username, password); err != nil {
		printErr(err)
		return
	}
	fmt.Println("sesión iniciada como", username)
}

func runRegister(ctx context.Context, client *api.Client, in *bufio.Scanner) {
	reg := api.RegisterInput{
		Username:  ask(in, "usuario: "),
		Email:     ask(in, "email: "),
		Password:  ask(in, "contraseña (mín. 8): "),
		Firstname: ask(in, "nombre: "),
		Lastname:  ask(in, "apellido: "),
		Birthday:  ask(in, "fecha de nacimiento (YYYY-MM-DD): "),
		MobileNum: ask(in, "celular (09XXXXXXXXX): "),
		Address:   ask(in, "dirección: "),
	}

	reg.PetKnowledge = askScore(in, "conocimiento de mascotas [0-5]: ")
	reg.StableLiving = askScore(in, "vivienda estable [0-5]: ")
	reg.FlexTime = askScore(in, "horario flexible [0-5]: ")
	reg.Environment = askScore(in, "ambiente adecuado [0-5]: ")

	img, err := askPhoto(in, "foto de perfil (ruta): ")
	if err != nil {
		printErr(err)
		return
	}
	reg.ProfilePhoto = img

	if err := client.Register(ctx, reg); err != nil {
		printErr(err)
		return
	}
	fmt.Println("cuenta creada; iniciá sesión con 'login'")
}

func runProfile(ctx context.Context, client *api.Client) {
	p, err := client.UserDetails(ctx)
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("%s %s (%s)\n", p.Firstname, p.Lastname, p.Username)
	fmt.Printf("  email: %s  celular: %s\n", p.Email, p.MobileNum)
	fmt.Printf("  dirección: %s  nacimiento: %s\n", p.Address, p.Birthday)
	fmt.Printf("  puntajes: conocimiento=%d vivienda=%d horario=%d ambiente=%d\n",
		p.PetKnowledge, p.StableLiving, p.FlexTime, p.Environment)
}

func runUpdate(ctx context.Context, client *api.Client, in *bufio.Scanner) {
	fmt.Println("dejá vacío cualquier campo para no cambiarlo")

	var patch api.UpdateDetailsInput
	set := func(dst **string, label string) {
		if v := ask(in, label); v != "" {
			*dst = &v
		}
	}
	set(&patch.Firstname, "nombre: ")
	set(&patch.Lastname, "apellido: ")
	set(&patch.Email, "email: ")
	set(&patch.MobileNum, "celular: ")
	set(&patch.Address, "dirección: ")

	if err := client.UpdateUserDetails(ctx, patch); err != nil {
		printErr(err)
		return
	}
	fmt.Println("perfil actualizado")
}

func runPets(ctx context.Context, client *api.Client, list func(context.Context) ([]api.PetListing, error)) {
	pets, err := list(ctx)
	if err != nil {
		printErr(err)
		return
	}
	if len(pets) == 0 {
		fmt.Println("no hay mascotas para mostrar")
		return
	}

	current, _ := client.Session().Username()
	for _, p := range pets {
		age := "?"
		if p.PetAge != nil {
			age = strconv.Itoa(*p.PetAge)
		}
		line := fmt.Sprintf("  [%s] %s — %s años, %s, %s", p.ID, p.PetName, age, p.Sex, p.Location)
		if p.CanAdopt(current) {
			line += "  (adoptable)"
		}
		fmt.Println(line)
	}
}

func runAddPet(ctx context.Context, client *api.Client, in *bufio.Scanner) {
	pet := api.AddPetInput{
		PetName:     ask(in, "nombre de la mascota: "),
		Sex:         ask(in, "sexo (Female/Male, opcional): "),
		Location:    ask(in, "ubicación: "),
		Description: ask(in, "descripción (opcional): "),
	}

	if v := ask(in, "edad (opcional): "); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			fmt.Println("edad inválida:", v)
			return
		}
		pet.PetAge = &age
	}

	img, err := askPhoto(in, "foto (ruta): ")
	if err != nil {
		printErr(err)
		return
	}
	pet.PetPhoto = img

	if err := client.AddPet(ctx, pet); err != nil {
		printErr(err)
		return
	}
	fmt.Println("mascota publicada")
}

func runAdopt(ctx context.Context, client *api.Client, in *bufio.Scanner, args []string) {
	if len(args) != 1 {
		fmt.Println("uso: adopt <id>")
		return
	}

	app := api.AdoptionInput{
		Name:                  ask(in, "nombre completo: "),
		Address:               ask(in, "dirección: "),
		Occupation:            ask(in, "ocupación: "),
		ResponsibleForPetCare: ask(in, "responsable del cuidado: "),
		PlanToCareForPet:      ask(in, "plan de cuidado: "),
		ClinicName:            ask(in, "veterinaria de referencia (opcional): "),
		ReasonForAdopting:     ask(in, "motivo de adopción: "),
	}

	img, err := askPhoto(in, "identificación (ruta): ")
	if err != nil {
		printErr(err)
		return
	}
	app.ProofOfIdentity = img

	if err := client.Adopt(ctx, args[0], app); err != nil {
		printErr(err)
		return
	}
	fmt.Println("solicitud enviada")
}

func runFeed(ctx context.Context, client *api.Client) {
	posts, err := client.AllPosts(ctx)
	if err != nil {
		printErr(err)
		return
	}
	if len(posts) == 0 {
		fmt.Println("el feed está vacío")
		return
	}
	for _, p := range posts {
		fmt.Printf("  %s @%s\n    %s\n", p.DatePosted, p.AuthorUsername, p.Content)
	}
}

func runPost(ctx context.Context, client *api.Client, in *bufio.Scanner, args []string) {
	content := strings.Join(args, " ")
	if content == "" {
		content = ask(in, "texto: ")
	}
	if err := client.CreatePost(ctx, content); err != nil {
		printErr(err)
		return
	}
	fmt.Println("post publicado")
}

func ask(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func askScore(in *bufio.Scanner, label string) int {
	n, err := strconv.Atoi(ask(in, label))
	if err != nil {
		return 0
	}
	return n
}

// askPhoto lee una ruta local y la codifica en base64 para el wire.
func askPhoto(in *bufio.Scanner, label string) (string, error) {
	img, err := media.EncodeFile(ask(in, label))
	if err != nil {
		return "", err
	}
	return img.Base64, nil
}

// printErr traduce la taxonomía del gateway a mensajes entendibles.
func printErr(err error) {
	var (
		ce *httpclient.ClientError
		se *httpclient.ServerError
		ne *httpclient.NetworkError
		me *httpclient.MalformedResponseError
		ve *api.ValidationError
	)
	switch {
	case errors.Is(err, api.ErrNoSession):
		fmt.Println("iniciá sesión primero ('login')")
	case errors.Is(err, httpclient.ErrNotConfigured):
		fmt.Println("falta configurar API_HOST (o config.yml)")
	case errors.As(err, &ve):
		fmt.Println("revisá estos campos:", strings.Join(ve.Fields, ", "))
	case errors.As(err, &ce):
		fmt.Println("rechazado:", ce.Detail)
	case errors.As(err, &se):
		fmt.Printf("el servidor falló (%d); probá de nuevo más tarde\n", se.StatusCode)
	case errors.As(err, &ne):
		fmt.Println("sin conexión con el servidor:", ne.Err)
	case errors.As(err, &me):
		fmt.Println("respuesta inesperada del servidor")
	default:
		fmt.Println("error:", err)
	}
}
