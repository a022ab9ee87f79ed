// Copyright © Rob Burke inchworks.com, 2025.

// This file is part of OsisWeb.
//
// OsisWeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// OsisWeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with OsisWeb.  If not, see <https://www.gnu.org/licenses/>.

package structure

// Organisation datasets, as published for the current school year.

import (
	"inchworks.com/osisweb/internal/models"
)

func osis() *models.Structure {
	return &models.Structure{
		Key:    models.StructureOSIS,
		Title:  "STRUKTUR ORGANISASI OSIS",
		Logo:   "assets/images/OSIS/osis-logo.png",
		Prefix: models.PrefixSekbid,
		Leadership: []*models.Person{
			{Name: "Jasmine Azalea A.H.", Class: "VIII-BIL2", Position: "Ketua Umum", Image: "assets/images/OSIS/ketua-osis/8BIL2_Jasmine Azalea A.H._Ketua Umum.png"},
			{Name: "Kania Dahayu U.", Class: "VIII-BIL3", Position: "Ketua 1", Image: "assets/images/OSIS/ketua-osis/8Bil3_Kania Dahayu U._Ketua 1.jpg"},
			{Name: "Ferandy Bintang P.P.", Class: "VIII-C", Position: "Ketua 2", Image: "assets/images/OSIS/ketua-osis/8C_Ferandy Bintang P.P_Ketua 2.png"},
		},
		Management: []*models.Person{
			{Name: "Rachel Ivana N.U.", Class: "VIII-BIL1", Position: "Sekretaris 1", Image: "assets/images/OSIS/bendahara-sekretaris/8BIL1_Rachel Ivana N.U_Sekretaris 1.png"},
			{Name: "Felcia Kinsey A.G.S.", Class: "VII-BIL1", Position: "Sekretaris 2", Image: "assets/images/OSIS/bendahara-sekretaris/7BIL1_Felcia Kinsey A.G.S._Sekretaris 2.jpg"},
			{Name: "Dinda Rasya Aulia", Class: "VIII-BIL1", Position: "Bendahara 1", Image: "assets/images/OSIS/bendahara-sekretaris/8BIL1_Dinda Rasya Aulia_Bendahara 1.jpg"},
			{Name: "Aliyya M. Halim", Class: "VII-F", Position: "Bendahara 2", Image: "assets/images/OSIS/bendahara-sekretaris/7F_Aliyya M. Halim_Bendara 2.png"},
		},
		Divisions: []*models.Division{
			{Id: "1", Title: "Keimanan dan Ketaqwaan kepada Tuhan yang Maha esa", Link: "sekbid1.html", Logo: "assets/images/OSIS/sekbid1-logo.png"},
			{Id: "2", Title: "Budi Pekerti dan Akhlak Mulia", Link: "sekbid2.html", Logo: "assets/images/OSIS/sekbid2-logo.png"},
			{Id: "3", Title: "Kepribadian Unggul, Wawasan Kebangsaan, dan Bela Negara", Link: "sekbid3.html", Logo: "assets/images/OSIS/sekbid3-logo.png"},
			{Id: "4", Title: "Prestasi Akademik, Seni, Olahraga, dan Kesehatan Jasmani", Link: "sekbid4.html", Logo: "assets/images/OSIS/sekbid4-logo.png"},
			{Id: "5", Title: "Demokrasi, HAM, Pend. Politik", Link: "sekbid5.html", Logo: "assets/images/OSIS/sekbid5-logo.png"},
			{Id: "6", Title: "Pembinaan Kreativitas, Keterampilan, dan Kewirausahaan", Link: "sekbid6.html", Logo: "assets/images/OSIS/sekbid6-logo.png"},
			{Id: "7", Title: "Sastra Budaya Lokal dan Internasional", Link: "sekbid7.html", Logo: "assets/images/OSIS/sekbid7-logo.png"},
			{Id: "8", Title: "Teknologi, Informasi, dan Komunikasi", Link: "sekbid8.html", Logo: "assets/images/OSIS/sekbid8-logo.png"},
		},
	}
}

func mpk() *models.Structure {
	return &models.Structure{
		Key:    models.StructureMPK,
		Title:  "STRUKTUR ORGANISASI MPK",
		Logo:   "assets/images/MPK/mpk-logo.png",
		Prefix: models.PrefixKomisi,
		Leadership: []*models.Person{
			{Name: "Arfa Wardana", Class: "VIII-BIL1", Position: "Ketua Umum", Image: "assets/images/MPK/ketua-mpk/Arfa Wardana - Ketua.png"},
			{Name: "Inggit Cahaya G.S.", Class: "VIII-BIL1", Position: "Ketua 1", Image: "assets/images/MPK/ketua-mpk/Inggit Cahaya Ganira Suryatmana - Ketua 1.jpg"},
			{Name: "Rinjani Atreya H.", Class: "VIII-C", Position: "Ketua 2", Image: "assets/images/MPK/ketua-mpk/Rinjani Atreya Hasyim - Ketua 2 MPK.jpg"},
		},
		Management: []*models.Person{
			{Name: "Abia Jemima", Class: "VIII-D", Position: "Sekretaris 1", Image: "assets/images/MPK/bendahara-sekretaris/Abia Jemima - Sekretaris 1.png"},
			{Name: "Aranka Hagani W.", Class: "VII-E", Position: "Sekretaris 2", Image: "assets/images/MPK/bendahara-sekretaris/Aranka Hagani Wyman-Sekretaris 2 .jpg"},
			{Name: "Syabila Maheswari A.", Class: "VIII-A", Position: "Bendahara 1", Image: "assets/images/MPK/bendahara-sekretaris/Syabila Maheswari Anandaku - Bendahara 1.jpg"},
			{Name: "Wigumvar Adtwija A.", Class: "VII-BIL2", Position: "Bendahara 2", Image: "assets/images/MPK/bendahara-sekretaris/Wigumvar Adtwija Ardiwinangun - Bendahara 2.jpg"},
		},
		Divisions: []*models.Division{
			{Id: "A", Title: "Mengawasi Anggaran Setiap Kegiatan OSIS", Link: "komisia.html", Logo: "assets/images/MPK/komisia-logo.png"},
			{Id: "B", Title: "Mengawasi Akademik Anggota OSIS", Link: "komisib.html", Logo: "assets/images/MPK/komisib-logo.png"},
			{Id: "C", Title: "Mengawasi Sekbid OSIS", Link: "komisic.html", Logo: "assets/images/MPK/komisic-logo.png"},
			{Id: "D", Title: "Hubungan Masyarakat", Link: "komisid.html", Logo: "assets/images/MPK/komisid-logo.png"},
			{Id: "E", Title: "Mengevaluasi Setiap Kegiatan OSIS", Link: "komisie.html", Logo: "assets/images/MPK/komisie-logo.png"},
		},
	}
}
